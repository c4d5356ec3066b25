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

package output

import (
	"fmt"

	"github.com/antst/mhydride/internal/sweep"
	"github.com/antst/mhydride/internal/units"
)

func chartSeries(s *sweep.Series, t units.TemperatureUnit) ChartSeries {
	x, y := s.XY()
	return ChartSeries{
		Name: fmt.Sprintf("%s %s%s %v", s.Material, temperatureName(s.Temperature), t, s.Branch),
		X:    x,
		Y:    y,
	}
}

func pressureLabel(p units.PressureUnit) string {
	return fmt.Sprintf("Peq [%s]", p)
}

// IsothermChart plots every series of ds.
func IsothermChart(ds *sweep.Dataset, p units.PressureUnit, t units.TemperatureUnit, logScale bool) Chart {
	c := Chart{
		Title:    ds.Material + " isotherms",
		XLabel:   "omega",
		YLabel:   pressureLabel(p),
		LogScale: logScale,
	}
	for i := range ds.Series {
		c.Series = append(c.Series, chartSeries(&ds.Series[i], t))
	}
	return c
}

// CycleChart plots the four cycle branches in cycle order.
func CycleChart(cy *sweep.Cycle, p units.PressureUnit, t units.TemperatureUnit, logScale bool) Chart {
	c := Chart{
		Title:    fmt.Sprintf("MHRFC %s / %s", cy.Floating, cy.Fixed),
		XLabel:   "omega",
		YLabel:   pressureLabel(p),
		LogScale: logScale,
	}
	for i := range cy.Series {
		cs := chartSeries(&cy.Series[i], t)
		cs.Name = fmt.Sprintf("%d %s: %s", i+1, sweep.RoleOf(i), cs.Name)
		c.Series = append(c.Series, cs)
	}
	return c
}
