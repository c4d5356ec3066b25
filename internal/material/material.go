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

package material

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/pkg/errors"

	"github.com/antst/mhydride/internal/kvfile"
	"github.com/antst/mhydride/internal/logger"
)

// Extension of material data files.
const Extension = ".mhd"

const (
	keyA    = "A"
	keyB    = "B"
	keyPhi  = "phi"
	keyPhi0 = "phi0"
	keyBeta = "beta"
)

var requiredKeys = []string{keyA, keyB, keyPhi, keyPhi0, keyBeta}

// Parameters holds the empirical coefficients of one material.
// Treat it as read-only once loaded.
type Parameters struct {
	Name string
	A    float64
	B    float64
	Phi  float64
	Phi0 float64
	Beta float64

	// Extra keeps every other record of the material file.
	Extra map[string]kvfile.Value
}

// MissingParameterError is returned when a required coefficient is absent.
type MissingParameterError struct {
	Material string
	File     string
	Key      string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("material `%s`: required parameter `%s` not found in %s", e.Material, e.Key, e.File)
}

func (p *Parameters) Float(key string) (float64, bool) {
	v, ok := p.Extra[key]
	if !ok {
		return 0, false
	}
	return v.Number()
}

func (p *Parameters) Int(key string) (int64, bool) {
	v, ok := p.Extra[key]
	if !ok || v.Kind != kvfile.Int {
		return 0, false
	}
	return v.Int, true
}

func (p *Parameters) String(key string) (string, bool) {
	v, ok := p.Extra[key]
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Store loads material files by name and caches the result.
type Store struct {
	fsys  fs.FS
	cache map[string]*Parameters
}

func NewStore(dir string) *Store {
	return NewStoreFS(os.DirFS(dir))
}

func NewStoreFS(fsys fs.FS) *Store {
	return &Store{fsys: fsys, cache: make(map[string]*Parameters)}
}

// Load returns the parameters of material name, read from name + Extension.
func (s *Store) Load(name string) (*Parameters, error) {
	if p, ok := s.cache[name]; ok {
		return p, nil
	}

	fileName := name + Extension
	f, err := s.fsys.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open material file for `%s`", name)
	}
	defer f.Close()

	data, err := kvfile.Parse(f, fileName)
	if err != nil {
		return nil, err
	}

	p, err := fromFile(name, data)
	if err != nil {
		return nil, err
	}

	logger.L().Debugf(
		"Loaded material `%s`: A=%g B=%g phi=%g phi0=%g beta=%g (%d extra keys)",
		name, p.A, p.B, p.Phi, p.Phi0, p.Beta, len(p.Extra),
	)
	s.cache[name] = p
	return p, nil
}

func fromFile(name string, data *kvfile.File) (*Parameters, error) {
	coeffs := make(map[string]float64, len(requiredKeys))
	for _, key := range requiredKeys {
		v, ok := data.Get(key)
		if !ok {
			return nil, &MissingParameterError{Material: name, File: data.Name, Key: key}
		}
		x, ok := v.Number()
		if !ok {
			return nil, &kvfile.ParseError{
				File: data.Name, Line: v.Line, Key: key,
				Err: errors.Errorf("expected a float value, got %s `%s`", v.Kind, v.Str),
			}
		}
		coeffs[key] = x
	}

	p := &Parameters{
		Name:  name,
		A:     coeffs[keyA],
		B:     coeffs[keyB],
		Phi:   coeffs[keyPhi],
		Phi0:  coeffs[keyPhi0],
		Beta:  coeffs[keyBeta],
		Extra: make(map[string]kvfile.Value),
	}
	for _, r := range data.Records {
		if !isRequired(r.Key) {
			p.Extra[r.Key] = r.Value
		}
	}
	return p, nil
}

func isRequired(key string) bool {
	for _, k := range requiredKeys {
		if k == key {
			return true
		}
	}
	return false
}
