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
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = newValidator()

// ValidationError lists every setting that failed validation, named by its
// input card key.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, ok := f.Tag.Lookup(cardTag); ok {
			return name
		}
		return f.Name
	})
	return v
}

// Validate checks the shared sections and the sections of the active modes.
func (cfg *Config) Validate() error {
	sections := []interface{}{&cfg.Sweep, &cfg.Output, &cfg.Probe}
	if cfg.Modes.Chart {
		sections = append(sections, &cfg.Isotherm)
	}
	if cfg.Modes.Cycle {
		sections = append(sections, &cfg.Cycle)
	}

	problems := make([]string, 0)
	for _, s := range sections {
		err := validate.Struct(s)
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.Wrap(err, "failed to validate configuration")
		}
		for _, fe := range fieldErrs {
			problems = append(problems, describe(fe))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return fmt.Sprintf("%s = %v violates `%s`", fe.Field(), fe.Value(), rule)
}
