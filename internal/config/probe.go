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

const defaultProbeOmega = 0.5

// ProbeConfig is the single point reported by -p. A nil Temperature keeps
// the model default of 300 K.
type ProbeConfig struct {
	Temperature *float64 `yaml:"temperature,omitempty" card:"probeT"`
	Omega       float64  `yaml:"omega" card:"probeOmega" validate:"gte=0,lte=1"`
}

func NewProbeConfig() ProbeConfig {
	return ProbeConfig{Omega: defaultProbeOmega}
}
