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

import "github.com/antst/mhydride/internal/output"

type OutputConfig struct {
	Dir          string              `yaml:"dir" card:"outputDir"`
	Mode         output.Mode         `yaml:"mode" card:"outputFile" validate:"oneof=single multiple"`
	Delimiter    output.Delimiter    `yaml:"delimiter" card:"delimiter" validate:"oneof=space tab csv"`
	NumberFormat output.NumberFormat `yaml:"number_format" card:"numberFormat" validate:"oneof=plain exp"`
	ShowChart    bool                `yaml:"show_chart" card:"showChart"`
	LogScale     bool                `yaml:"log_scale" card:"logScale"`
	ChartFile    string              `yaml:"chart_file,omitempty" card:"chartFile"`
}

func NewOutputConfig() OutputConfig {
	cfg := OutputConfig{}
	cfg.FillDefaults()
	return cfg
}

func (c *OutputConfig) FillDefaults() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.Mode == "" {
		c.Mode = output.Single
	}
	if c.Delimiter == "" {
		c.Delimiter = output.CSV
	}
	if c.NumberFormat == "" {
		c.NumberFormat = output.Plain
	}
}

func (c *OutputConfig) Format() output.Format {
	return output.Format{Delimiter: c.Delimiter, Number: c.NumberFormat}
}
