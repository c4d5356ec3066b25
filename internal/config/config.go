/*
 * Copyright (c) 2023. Anton Starikov -- All Rights Reserved
 *
 * This file is part of MHYDRIDE project.
 *
 * MHYDRIDE is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as the Free Software Foundation,
 * either version 3 of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/antst/mhydride/internal/kvfile"
	"github.com/antst/mhydride/internal/logger"
)

const (
	programName        = "mhydride"
	defaultMaterialDir = "."
)

// ErrHelp is returned by Load when usage was requested and printed.
var ErrHelp = errors.New("help requested")

// Modes are the run modes picked on the command line.
type Modes struct {
	Chart bool
	Cycle bool
	Probe bool
}

type Config struct {
	LogLevel    zapcore.Level  `yaml:"log_level" card:"logLevel"`
	MaterialDir string         `yaml:"material_dir" card:"materialDir"`
	Units       UnitsConfig    `yaml:"units"`
	Sweep       SweepConfig    `yaml:"sweep"`
	Isotherm    IsothermConfig `yaml:"isotherm"`
	Cycle       CycleConfig    `yaml:"cycle"`
	Output      OutputConfig   `yaml:"output"`
	Probe       ProbeConfig    `yaml:"probe"`

	Modes     Modes  `yaml:"-"`
	InputFile string `yaml:"-"`

	// Extra keeps input card keys that no setting uses.
	Extra map[string]kvfile.Value `yaml:"-"`
}

func defConfig() *Config {
	return &Config{
		LogLevel:    zapcore.InfoLevel,
		MaterialDir: defaultMaterialDir,
		Units:       NewUnitsConfig(),
		Sweep:       NewSweepConfig(),
		Isotherm:    NewIsothermConfig(),
		Output:      NewOutputConfig(),
		Probe:       NewProbeConfig(),
		Extra:       make(map[string]kvfile.Value),
	}
}

func prettyPrint(cfg *Config) {
	d, err := yaml.Marshal(cfg)
	if err != nil {
		logger.L().Error("Failed to marshal config for pretty print", err)
		return
	}
	logger.L().Debugf("--- Config ---\n%s\n\n", string(d))
}

func (cfg *Config) FillDefaults() {
	if cfg.MaterialDir == "" {
		cfg.MaterialDir = defaultMaterialDir
	}
	cfg.Isotherm.FillDefaults()
	cfg.Output.FillDefaults()
	if cfg.Extra == nil {
		cfg.Extra = make(map[string]kvfile.Value)
	}
	if !cfg.Modes.Chart && !cfg.Modes.Cycle {
		cfg.Modes.Probe = true
	}
}

// Get loads the configuration from the process arguments. It exits on
// failure, and with status 0 after printing usage.
func Get() *Config {
	cfg, err := Load(os.Args)
	if errors.Is(err, ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		logger.L().Fatalf("GetConfig: %v", err)
	}
	return cfg
}

// Load parses args (args[0] is the program name), reads the input card and
// validates the result.
func Load(args []string) (*Config, error) {
	set := getopt.New()
	set.SetProgram(programName)
	set.SetParameters("")

	help := set.BoolLong("help", 'h', "print this help")
	inputFile := set.StringLong("file", 'f', "", "input card pathname, .yaml/.yml are read as YAML")
	chart := set.BoolLong("chart", 'c', "generate isotherm data")
	cycle := set.BoolLong("mhrfc", 'm', "generate MHRFC cycle data")
	probe := set.BoolLong("probe", 'p', "print equilibrium pressures at the probe point")
	materialDir := set.StringLong("material-dir", 'd', "", "directory of .mhd material files")
	outputDir := set.StringLong("output-dir", 'o', "", "directory for written files")
	logLevel := set.StringLong("log-level", 'l', "", "log levels: debug, info, warn, error, dpanic, panic, fatal")

	if err := set.Getopt(args, nil); err != nil {
		set.PrintUsage(os.Stderr)
		return nil, errors.Wrap(err, "failed to parse command line")
	}
	if *help {
		set.PrintUsage(os.Stdout)
		return nil, ErrHelp
	}

	cfg := defConfig()
	if *inputFile != "" {
		if err := readFile(cfg, *inputFile); err != nil {
			return nil, err
		}
		cfg.InputFile = *inputFile
		logger.L().Infof("Using input file `%v`", *inputFile)
	}

	if *materialDir != "" {
		cfg.MaterialDir = *materialDir
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	cfg.Modes = Modes{Chart: *chart, Cycle: *cycle, Probe: *probe}
	cfg.FillDefaults()

	if *logLevel != "" {
		if err := cfg.LogLevel.Set(*logLevel); err != nil {
			return nil, errors.Wrapf(err, "wrong log level `%v`", *logLevel)
		}
	}
	logger.SetLogLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.L().Infof("Using material directory `%v`", cfg.MaterialDir)
	prettyPrint(cfg)

	return cfg, nil
}

func readFile(cfg *Config, fileName string) error {
	f, err := os.Open(fileName)
	if err != nil {
		return errors.Wrap(err, "failed to open input file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return errors.Wrap(err, "failed to read input file")
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errors.Wrapf(err, "failed to unmarshal %s", fileName)
		}
		return nil
	}

	card, err := kvfile.Parse(bytes.NewReader(data), fileName)
	if err != nil {
		return err
	}
	return applyCard(cfg, card)
}
