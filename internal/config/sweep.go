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

const (
	defaultOmegaStart = 0.0
	defaultOmegaEnd   = 1.0
	defaultDelOmega   = 0.01
)

// SweepConfig is the hydriding fraction range shared by isotherms and cycles.
type SweepConfig struct {
	OmegaStart float64 `yaml:"omega_start" card:"omegaStart" validate:"gte=0,lte=1"`
	OmegaEnd   float64 `yaml:"omega_end" card:"omegaEnd" validate:"gte=0,lte=1,gtefield=OmegaStart"`
	DelOmega   float64 `yaml:"del_omega" card:"delOmega" validate:"gt=0"`
}

func NewSweepConfig() SweepConfig {
	return SweepConfig{OmegaStart: defaultOmegaStart, OmegaEnd: defaultOmegaEnd, DelOmega: defaultDelOmega}
}
