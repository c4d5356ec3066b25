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

import "strings"

const (
	defaultTStart = 300.0
	defaultTEnd   = 300.0
	defaultDelT   = 10.0
	defaultPlot   = "B"
)

// IsothermConfig configures isotherm data generation (-c).
type IsothermConfig struct {
	Material string  `yaml:"material" card:"mhydrideName" validate:"required"`
	TStart   float64 `yaml:"t_start" card:"tStart"`
	TEnd     float64 `yaml:"t_end" card:"tEnd" validate:"gtefield=TStart"`
	DelT     float64 `yaml:"del_t" card:"delT" validate:"gt=0"`
	Plot     string  `yaml:"plot" card:"plot" validate:"oneof=A D B"`
}

func NewIsothermConfig() IsothermConfig {
	return IsothermConfig{TStart: defaultTStart, TEnd: defaultTEnd, DelT: defaultDelT, Plot: defaultPlot}
}

func (c *IsothermConfig) FillDefaults() {
	c.Plot = strings.ToUpper(strings.TrimSpace(c.Plot))
	if c.Plot == "" {
		c.Plot = defaultPlot
	}
}
