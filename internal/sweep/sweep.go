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

// Package sweep drives an equilibrium model over temperature and hydriding
// fraction ranges to produce isotherm series and MHRFC cycle data.
//
// Ranges are stepped by repeated addition while the value is <= the end.
// Floating point drift can therefore include or drop the last point, e.g.
// 0 to 1 by 0.1 ends at 0.9999999999999999 rather than 1.
package sweep

import (
	"fmt"
	"strings"

	"github.com/antst/mhydride/internal/hydride_model"
	"github.com/antst/mhydride/internal/logger"
)

type BranchSet int

const (
	Absorption BranchSet = iota
	Desorption
	Both
)

func (s BranchSet) String() string {
	switch s {
	case Desorption:
		return "D"
	case Both:
		return "B"
	}
	return "A"
}

// Branches returns the branches to evaluate, absorption first.
func (s BranchSet) Branches() []hydride_model.Branch {
	switch s {
	case Desorption:
		return []hydride_model.Branch{hydride_model.Desorption}
	case Both:
		return []hydride_model.Branch{hydride_model.Absorption, hydride_model.Desorption}
	}
	return []hydride_model.Branch{hydride_model.Absorption}
}

// ParseBranchSet accepts A, D or B in any case.
func ParseBranchSet(s string) (BranchSet, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return Absorption, nil
	case "D":
		return Desorption, nil
	case "B":
		return Both, nil
	}
	return 0, fmt.Errorf("invalid plot branch `%s`, expected A, D or B", s)
}

type Point struct {
	Omega    float64
	Pressure float64
}

// Series is one isotherm branch. Points are in evaluation order.
type Series struct {
	Material    string
	Temperature float64
	Branch      hydride_model.Branch
	Points      []Point
}

// XY splits the series into omega and pressure slices for plotting sinks.
func (s *Series) XY() ([]float64, []float64) {
	x := make([]float64, len(s.Points))
	y := make([]float64, len(s.Points))
	for i, p := range s.Points {
		x[i], y[i] = p.Omega, p.Pressure
	}
	return x, y
}

type Dataset struct {
	Material string
	Series   []Series
}

// Temperatures returns the distinct isotherm temperatures in order.
func (d *Dataset) Temperatures() []float64 {
	var temps []float64
	for _, s := range d.Series {
		if len(temps) == 0 || temps[len(temps)-1] != s.Temperature {
			temps = append(temps, s.Temperature)
		}
	}
	return temps
}

// Range describes an isotherm sweep. Temperatures are in the model's temperature unit.
type Range struct {
	TStart, TEnd, DeltaT             float64
	OmegaStart, OmegaEnd, DeltaOmega float64
}

// RangeError is returned for a step that would never reach the end of a range.
type RangeError struct {
	Field string
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s = %g, step must be positive", e.Field, e.Value)
}

// PointError carries the coordinate at which a sweep failed.
type PointError struct {
	Material    string
	Temperature float64
	Omega       float64
	Branch      hydride_model.Branch
	Err         error
}

func (e *PointError) Error() string {
	return fmt.Sprintf(
		"material `%s` failed at T=%g, omega=%g, branch %v: %v",
		e.Material, e.Temperature, e.Omega, e.Branch, e.Err,
	)
}

func (e *PointError) Unwrap() error {
	return e.Err
}

// Isotherm evaluates one series per temperature and branch. For Both, the
// absorption series of a temperature is followed by its desorption series.
func Isotherm(m *hydride_model.Model, r Range, branches BranchSet) (*Dataset, error) {
	if r.DeltaT <= 0 {
		return nil, &RangeError{Field: "delT", Value: r.DeltaT}
	}
	if r.DeltaOmega <= 0 {
		return nil, &RangeError{Field: "delOmega", Value: r.DeltaOmega}
	}

	ds := &Dataset{Material: m.Name()}
	for t := r.TStart; t <= r.TEnd; t += r.DeltaT {
		for _, b := range branches.Branches() {
			s, err := series(m, t, r.OmegaStart, r.OmegaEnd, r.DeltaOmega, b)
			if err != nil {
				return nil, err
			}
			ds.Series = append(ds.Series, *s)
		}
	}

	logger.L().Debugf("Isotherm sweep for `%s` produced %d series", ds.Material, len(ds.Series))
	return ds, nil
}

func series(m *hydride_model.Model, t, omegaStart, omegaEnd, deltaOmega float64, b hydride_model.Branch) (*Series, error) {
	if err := m.SetTemperature(t); err != nil {
		return nil, &PointError{Material: m.Name(), Temperature: t, Omega: omegaStart, Branch: b, Err: err}
	}

	s := &Series{Material: m.Name(), Temperature: t, Branch: b}
	for omega := omegaStart; omega <= omegaEnd; omega += deltaOmega {
		m.SetHydridingFraction(omega)
		p, err := m.EquilibriumPressure(b)
		if err != nil {
			return nil, &PointError{Material: m.Name(), Temperature: t, Omega: omega, Branch: b, Err: err}
		}
		s.Points = append(s.Points, Point{Omega: omega, Pressure: p})
	}

	logger.L().Debugf("Series `%s` T=%g %v: %d points", s.Material, t, b, len(s.Points))
	return s, nil
}
