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

// CycleConfig configures MHRFC cycle generation (-m). The floating material
// moves between THigh and TLow, the fixed one stays at TLow.
type CycleConfig struct {
	Floating string  `yaml:"floating" card:"floatMhydrideName" validate:"required"`
	Fixed    string  `yaml:"fixed" card:"fixedMhydrideName" validate:"required"`
	THigh    float64 `yaml:"t_high" card:"tHi" validate:"gtfield=TLow"`
	TLow     float64 `yaml:"t_low" card:"tLow"`
}
