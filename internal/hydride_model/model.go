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

// Package hydride_model computes the equilibrium pressure of a metal hydride
// with the Choi and Mills correlation
//
//	ln(Peq) = -A/T + B + (phi ± phi0)·tan(π(ω - 0.5)) ± beta/2,   0 < ω < 1
//
// where the upper sign is absorption and the lower is desorption. At ω = 0
// and ω = 1 only -A/T + B is used. Peq is in atm, T in kelvin.
package hydride_model

import (
	"fmt"
	"math"

	"github.com/antst/mhydride/internal/material"
	"github.com/antst/mhydride/internal/units"
)

const (
	defaultTemperature = 300.0
	defaultOmega       = 0.0
)

type Branch int

const (
	Absorption Branch = iota
	Desorption
)

func (b Branch) String() string {
	if b == Desorption {
		return "D"
	}
	return "A"
}

func (b Branch) sign() float64 {
	if b == Desorption {
		return -1.0
	}
	return 1.0
}

// DomainError is returned when the model is evaluated outside its domain.
type DomainError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s = %g out of domain: %s", e.Quantity, e.Value, e.Reason)
}

// Model holds the evaluation state for one material. Temperature is kept in
// kelvin and converted at the setter and getter.
type Model struct {
	params      *material.Parameters
	temperature float64
	omega       float64
	pUnit       units.PressureUnit
	tUnit       units.TemperatureUnit
}

func New(params *material.Parameters) *Model {
	return &Model{
		params:      params,
		temperature: defaultTemperature,
		omega:       defaultOmega,
		pUnit:       units.Atm,
		tUnit:       units.Kelvin,
	}
}

func (m *Model) SetMaterial(params *material.Parameters) {
	m.params = params
}

func (m *Model) Material() *material.Parameters {
	return m.params
}

// Name returns the material name, or "" when no material is set.
func (m *Model) Name() string {
	if m.params == nil {
		return ""
	}
	return m.params.Name
}

// SetTemperature sets the temperature, given in the current temperature unit.
func (m *Model) SetTemperature(t float64) error {
	k, err := units.ConvertTemperature(t, m.tUnit, units.Kelvin)
	if err != nil {
		return err
	}
	m.temperature = k
	return nil
}

// Temperature returns the temperature in the current temperature unit.
func (m *Model) Temperature() float64 {
	t, err := units.ConvertTemperature(m.temperature, units.Kelvin, m.tUnit)
	if err != nil {
		return m.temperature
	}
	return t
}

func (m *Model) Kelvin() float64 {
	return m.temperature
}

func (m *Model) SetHydridingFraction(omega float64) {
	m.omega = omega
}

func (m *Model) HydridingFraction() float64 {
	return m.omega
}

func (m *Model) SetPressureUnit(u units.PressureUnit) error {
	if !u.Valid() {
		return &units.InvalidUnitError{Kind: "pressure", Unit: u.String()}
	}
	m.pUnit = u
	return nil
}

func (m *Model) PressureUnit() units.PressureUnit {
	return m.pUnit
}

func (m *Model) SetTemperatureUnit(u units.TemperatureUnit) error {
	if !u.Valid() {
		return &units.InvalidUnitError{Kind: "temperature", Unit: u.String()}
	}
	m.tUnit = u
	return nil
}

func (m *Model) TemperatureUnit() units.TemperatureUnit {
	return m.tUnit
}

// LnEquilibriumPressure returns ln(Peq) with Peq in atm.
func (m *Model) LnEquilibriumPressure(branch Branch) (float64, error) {
	if m.params == nil {
		return 0, fmt.Errorf("no material set")
	}
	if math.IsNaN(m.temperature) || math.IsInf(m.temperature, 0) || m.temperature <= 0 {
		return 0, &DomainError{Quantity: "T", Value: m.temperature, Reason: "absolute temperature must be positive"}
	}
	if math.IsNaN(m.omega) || m.omega < 0 || m.omega > 1 {
		return 0, &DomainError{Quantity: "omega", Value: m.omega, Reason: "hydriding fraction must be within [0, 1]"}
	}

	p := m.params
	lnP := -p.A/m.temperature + p.B

	// plateau edges carry no slope or hysteresis term
	if m.omega > 0 && m.omega < 1 {
		s := branch.sign()
		lnP += (p.Phi + s*p.Phi0) * math.Tan(math.Pi*(m.omega-0.5))
		lnP += s * p.Beta / 2.0
	}

	return lnP, nil
}

// EquilibriumPressure returns Peq for the branch in the current pressure unit.
func (m *Model) EquilibriumPressure(branch Branch) (float64, error) {
	lnP, err := m.LnEquilibriumPressure(branch)
	if err != nil {
		return 0, err
	}
	return units.ConvertPressure(math.Exp(lnP), units.Atm, m.pUnit)
}
