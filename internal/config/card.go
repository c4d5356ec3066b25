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

import (
	"encoding"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/antst/mhydride/internal/kvfile"
	"github.com/antst/mhydride/internal/logger"
)

const cardTag = "card"

// applyCard copies key/value records into the fields carrying a matching
// `card` tag. Records with no matching field go to cfg.Extra.
func applyCard(cfg *Config, card *kvfile.File) error {
	fields := make(map[string]reflect.Value)
	collectCardFields(reflect.ValueOf(cfg).Elem(), fields)

	for _, r := range card.Records {
		field, ok := fields[r.Key]
		if !ok {
			logger.L().Debugf("Input key `%s` is not a setting, kept as extra", r.Key)
			cfg.Extra[r.Key] = r.Value
			continue
		}
		if err := setField(field, r.Value); err != nil {
			return &kvfile.ParseError{File: card.Name, Line: r.Value.Line, Key: r.Key, Err: err}
		}
	}
	return nil
}

func collectCardFields(v reflect.Value, fields map[string]reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if key, ok := f.Tag.Lookup(cardTag); ok {
			fields[key] = v.Field(i)
			continue
		}
		if f.Type.Kind() == reflect.Struct {
			collectCardFields(v.Field(i), fields)
		}
	}
}

func setField(field reflect.Value, v kvfile.Value) error {
	if field.Kind() == reflect.Ptr {
		elem := reflect.New(field.Type().Elem())
		if err := setField(elem.Elem(), v); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}

	if u, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(v.String()))
	}

	switch field.Kind() {
	case reflect.Float64:
		x, ok := v.Number()
		if !ok {
			var err error
			if x, err = strconv.ParseFloat(v.Str, 64); err != nil {
				return errors.Errorf("expected a number, got `%s`", v.Str)
			}
		}
		field.SetFloat(x)
	case reflect.Bool:
		b, err := parseBool(v.String())
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.String:
		field.SetString(v.String())
	default:
		return errors.Errorf("unsupported setting type %v", field.Type())
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	}
	return false, errors.Errorf("expected a boolean, got `%s`", s)
}
