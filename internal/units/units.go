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

// Package units converts pressure values among atm, Pa, kPa and psia and
// temperature values among K, degC, degF and degR.
package units

import (
	"fmt"
	"strings"
)

const (
	atmToPa   = 101325.0
	atmToKPa  = 101.325
	atmToPsia = 14.7 // low-precision, kept for output compatibility

	degCOffset = 273.15
	degFOffset = 32.0
	kToDegR    = 1.8
)

type PressureUnit int

const (
	Atm PressureUnit = iota
	Pa
	KPa
	Psia
)

type TemperatureUnit int

const (
	Kelvin TemperatureUnit = iota
	Celsius
	Fahrenheit
	Rankine
)

// perAtm is how many of each unit make one atmosphere.
var perAtm = map[PressureUnit]float64{
	Atm:  1.0,
	Pa:   atmToPa,
	KPa:  atmToKPa,
	Psia: atmToPsia,
}

var pressureNames = map[PressureUnit]string{
	Atm:  "atm",
	Pa:   "pa",
	KPa:  "kpa",
	Psia: "psia",
}

var temperatureNames = map[TemperatureUnit]string{
	Kelvin:     "k",
	Celsius:    "degc",
	Fahrenheit: "degf",
	Rankine:    "degr",
}

var temperatureAliases = map[string]TemperatureUnit{
	"c": Celsius,
	"f": Fahrenheit,
	"r": Rankine,
}

// InvalidUnitError is returned for a unit token or value that is not supported.
type InvalidUnitError struct {
	Kind string
	Unit string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid %s unit `%s`", e.Kind, e.Unit)
}

func (u PressureUnit) Valid() bool {
	_, ok := perAtm[u]
	return ok
}

func (u PressureUnit) String() string {
	if n, ok := pressureNames[u]; ok {
		return n
	}
	return fmt.Sprintf("PressureUnit(%d)", int(u))
}

func (u PressureUnit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, &InvalidUnitError{Kind: "pressure", Unit: u.String()}
	}
	return []byte(u.String()), nil
}

func (u *PressureUnit) UnmarshalText(text []byte) error {
	p, err := ParsePressureUnit(string(text))
	if err != nil {
		return err
	}
	*u = p
	return nil
}

func (u TemperatureUnit) Valid() bool {
	_, ok := temperatureNames[u]
	return ok
}

func (u TemperatureUnit) String() string {
	if n, ok := temperatureNames[u]; ok {
		return n
	}
	return fmt.Sprintf("TemperatureUnit(%d)", int(u))
}

func (u TemperatureUnit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, &InvalidUnitError{Kind: "temperature", Unit: u.String()}
	}
	return []byte(u.String()), nil
}

func (u *TemperatureUnit) UnmarshalText(text []byte) error {
	t, err := ParseTemperatureUnit(string(text))
	if err != nil {
		return err
	}
	*u = t
	return nil
}

// ParsePressureUnit accepts atm, pa, kpa and psia in any case.
func ParsePressureUnit(s string) (PressureUnit, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for u, n := range pressureNames {
		if n == token {
			return u, nil
		}
	}
	return 0, &InvalidUnitError{Kind: "pressure", Unit: s}
}

// ParseTemperatureUnit accepts k, degc, degf and degr in any case, and c, f, r
// as short forms.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for u, n := range temperatureNames {
		if n == token {
			return u, nil
		}
	}
	if u, ok := temperatureAliases[token]; ok {
		return u, nil
	}
	return 0, &InvalidUnitError{Kind: "temperature", Unit: s}
}

// ConvertPressure converts value from one pressure unit to another through atm.
func ConvertPressure(value float64, from, to PressureUnit) (float64, error) {
	fromFactor, ok := perAtm[from]
	if !ok {
		return 0, &InvalidUnitError{Kind: "pressure", Unit: from.String()}
	}
	toFactor, ok := perAtm[to]
	if !ok {
		return 0, &InvalidUnitError{Kind: "pressure", Unit: to.String()}
	}
	if from == to {
		return value, nil
	}
	return value / fromFactor * toFactor, nil
}

// ConvertTemperature converts value from one temperature unit to another through kelvin.
func ConvertTemperature(value float64, from, to TemperatureUnit) (float64, error) {
	if !from.Valid() {
		return 0, &InvalidUnitError{Kind: "temperature", Unit: from.String()}
	}
	if !to.Valid() {
		return 0, &InvalidUnitError{Kind: "temperature", Unit: to.String()}
	}
	if from == to {
		return value, nil
	}
	return fromKelvin(toKelvin(value, from), to), nil
}

func toKelvin(v float64, from TemperatureUnit) float64 {
	switch from {
	case Celsius:
		return v + degCOffset
	case Fahrenheit:
		return (v-degFOffset)/kToDegR + degCOffset
	case Rankine:
		return v / kToDegR
	}
	return v
}

func fromKelvin(k float64, to TemperatureUnit) float64 {
	switch to {
	case Celsius:
		return k - degCOffset
	case Fahrenheit:
		return (k-degCOffset)*kToDegR + degFOffset
	case Rankine:
		return k * kToDegR
	}
	return k
}

// PressureUnits lists every supported pressure unit.
func PressureUnits() []PressureUnit {
	return []PressureUnit{Atm, Pa, KPa, Psia}
}

// TemperatureUnits lists every supported temperature unit.
func TemperatureUnits() []TemperatureUnit {
	return []TemperatureUnit{Kelvin, Celsius, Fahrenheit, Rankine}
}
