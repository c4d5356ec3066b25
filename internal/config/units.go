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

import "github.com/antst/mhydride/internal/units"

// UnitsConfig selects the units values are entered and reported in.
type UnitsConfig struct {
	Pressure    units.PressureUnit    `yaml:"pressure" card:"pUnits"`
	Temperature units.TemperatureUnit `yaml:"temperature" card:"tUnits"`
}

func NewUnitsConfig() UnitsConfig {
	return UnitsConfig{Pressure: units.Atm, Temperature: units.Kelvin}
}
