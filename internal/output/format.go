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
	"strings"
)

type Mode string

const (
	Single   Mode = "single"
	Multiple Mode = "multiple"
)

type Delimiter string

const (
	Space Delimiter = "space"
	Tab   Delimiter = "tab"
	CSV   Delimiter = "csv"
)

type NumberFormat string

const (
	Plain       NumberFormat = "plain"
	Exponential NumberFormat = "exp"
)

var delimiters = map[Delimiter]string{
	Space: " ",
	Tab:   "\t",
	CSV:   ", ",
}

var numberVerbs = map[NumberFormat]string{
	Plain:       "%6.3f",
	Exponential: "%.3e",
}

func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m != Single && m != Multiple {
		return "", fmt.Errorf("invalid output mode `%s`, expected single or multiple", s)
	}
	return m, nil
}

func ParseDelimiter(s string) (Delimiter, error) {
	d := Delimiter(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := delimiters[d]; !ok {
		return "", fmt.Errorf("invalid delimiter `%s`, expected space, tab or csv", s)
	}
	return d, nil
}

func ParseNumberFormat(s string) (NumberFormat, error) {
	n := NumberFormat(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := numberVerbs[n]; !ok {
		return "", fmt.Errorf("invalid number format `%s`, expected plain or exp", s)
	}
	return n, nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (d *Delimiter) UnmarshalText(text []byte) error {
	v, err := ParseDelimiter(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (n *NumberFormat) UnmarshalText(text []byte) error {
	v, err := ParseNumberFormat(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Format renders data lines. The zero value writes csv with plain numbers.
type Format struct {
	Delimiter Delimiter
	Number    NumberFormat
}

func (f Format) separator() string {
	if s, ok := delimiters[f.Delimiter]; ok {
		return s
	}
	return delimiters[CSV]
}

func (f Format) verb() string {
	if v, ok := numberVerbs[f.Number]; ok {
		return v
	}
	return numberVerbs[Plain]
}

// Line formats values with the number format, joined by the delimiter.
func (f Format) Line(values ...float64) string {
	verb := f.verb()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf(verb, v)
	}
	return strings.Join(parts, f.separator())
}
