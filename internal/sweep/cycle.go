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

package sweep

import (
	"github.com/antst/mhydride/internal/hydride_model"
	"github.com/antst/mhydride/internal/logger"
)

// Positions of the series in a Cycle.
const (
	FloatingDesorptionHigh = iota
	FloatingAbsorptionLow
	FixedAbsorptionLow
	FixedDesorptionLow
	CycleSeries
)

// Role tells which material of the pair a cycle series belongs to.
type Role int

const (
	Floating Role = iota
	Fixed
)

func (r Role) String() string {
	if r == Fixed {
		return "fixed"
	}
	return "float"
}

// CycleRange holds the reservoir temperatures, in the models' temperature
// unit, and the omega range of every branch.
type CycleRange struct {
	THigh, TLow                      float64
	OmegaStart, OmegaEnd, DeltaOmega float64
}

// Cycle is the four branch MHRFC dataset. The floating material swings
// between the hot and cold reservoir while the fixed one stays cold.
type Cycle struct {
	Floating string
	Fixed    string
	Series   [CycleSeries]Series
}

type cycleStep struct {
	role   Role
	branch hydride_model.Branch
	high   bool
}

var cycleSteps = [CycleSeries]cycleStep{
	FloatingDesorptionHigh: {Floating, hydride_model.Desorption, true},
	FloatingAbsorptionLow:  {Floating, hydride_model.Absorption, false},
	FixedAbsorptionLow:     {Fixed, hydride_model.Absorption, false},
	FixedDesorptionLow:     {Fixed, hydride_model.Desorption, false},
}

// RoleOf returns the material role of the series at position i.
func RoleOf(i int) Role {
	return cycleSteps[i].role
}

// BuildCycle evaluates the four cycle branches in their fixed order.
func BuildCycle(floating, fixed *hydride_model.Model, r CycleRange) (*Cycle, error) {
	if r.DeltaOmega <= 0 {
		return nil, &RangeError{Field: "delOmega", Value: r.DeltaOmega}
	}

	c := &Cycle{Floating: floating.Name(), Fixed: fixed.Name()}
	for i, step := range cycleSteps {
		m := floating
		if step.role == Fixed {
			m = fixed
		}
		t := r.TLow
		if step.high {
			t = r.THigh
		}

		s, err := series(m, t, r.OmegaStart, r.OmegaEnd, r.DeltaOmega, step.branch)
		if err != nil {
			return nil, err
		}
		c.Series[i] = *s
	}

	logger.L().Debugf("MHRFC cycle `%s`/`%s` built at tHi=%g tLow=%g", c.Floating, c.Fixed, r.THigh, r.TLow)
	return c, nil
}
