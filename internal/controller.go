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

package internal

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/antst/mhydride/internal/config"
	"github.com/antst/mhydride/internal/hydride_model"
	"github.com/antst/mhydride/internal/logger"
	"github.com/antst/mhydride/internal/material"
	"github.com/antst/mhydride/internal/output"
)

// Controller runs the modes selected in the configuration against one
// material store.
type Controller struct {
	cfg    *config.Config
	store  *material.Store
	text   *output.TextWriter
	charts *output.ChartWriter
	out    io.Writer
	runID  string
	log    *zap.SugaredLogger
}

func NewController(cfg *config.Config) *Controller {
	return newController(cfg, material.NewStore(cfg.MaterialDir), os.Stdout)
}

func newController(cfg *config.Config, store *material.Store, out io.Writer) *Controller {
	runID := uuid.New().String()
	c := &Controller{
		cfg:   cfg,
		store: store,
		out:   out,
		runID: runID,
		log:   logger.With("run", runID),
		text: &output.TextWriter{
			Dir:             cfg.Output.Dir,
			Format:          cfg.Output.Format(),
			PressureUnit:    cfg.Units.Pressure,
			TemperatureUnit: cfg.Units.Temperature,
		},
		charts: &output.ChartWriter{Dir: cfg.Output.Dir, RunID: runID},
	}
	return c
}

func (c *Controller) RunID() string {
	return c.runID
}

// Run executes isotherm, cycle and probe mode, in that order, for every
// mode that is enabled. The first failure stops the run.
func (c *Controller) Run() error {
	c.log.Infof("Run started, materials from `%v`, output to `%v`", c.cfg.MaterialDir, c.cfg.Output.Dir)

	if c.cfg.Modes.Chart {
		if err := c.runIsotherm(); err != nil {
			return errors.WithMessage(err, "isotherm")
		}
	}
	if c.cfg.Modes.Cycle {
		if err := c.runCycle(); err != nil {
			return errors.WithMessage(err, "mhrfc")
		}
	}
	if c.cfg.Modes.Probe {
		if err := c.runProbe(); err != nil {
			return errors.WithMessage(err, "probe")
		}
	}

	c.log.Info("Run completed")
	return nil
}

// newModel loads material name and sets up a model in the configured units.
func (c *Controller) newModel(name string) (*hydride_model.Model, error) {
	params, err := c.store.Load(name)
	if err != nil {
		return nil, err
	}

	m := hydride_model.New(params)
	if err := m.SetPressureUnit(c.cfg.Units.Pressure); err != nil {
		return nil, err
	}
	if err := m.SetTemperatureUnit(c.cfg.Units.Temperature); err != nil {
		return nil, err
	}
	return m, nil
}

// chartName is the configured workbook name, or one derived from dataFile.
func (c *Controller) chartName(dataFile string) string {
	if c.cfg.Output.ChartFile != "" {
		return c.cfg.Output.ChartFile
	}
	return output.ChartFile(dataFile)
}
