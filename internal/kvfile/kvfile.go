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

// Package kvfile reads the line oriented key/value records used by material
// files and input cards:
//
//	# comment
//	KEY = TYPE VALUE
//
// TYPE is float, int or anything else for a string value.
package kvfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Kind int

const (
	String Kind = iota
	Float
	Int
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	}
	return "string"
}

// Value is one typed record value.
type Value struct {
	Kind  Kind
	Float float64
	Int   int64
	Str   string
	Line  int
}

// Number returns the value as float64 for float and int records.
func (v Value) Number() (float64, bool) {
	switch v.Kind {
	case Float:
		return v.Float, true
	case Int:
		return float64(v.Int), true
	}
	return 0, false
}

func (v Value) String() string {
	switch v.Kind {
	case Float:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case Int:
		return strconv.FormatInt(v.Int, 10)
	}
	return v.Str
}

// Record is a single KEY = TYPE VALUE line.
type Record struct {
	Key   string
	Value Value
}

// ParseError reports a value that cannot be parsed as its declared type.
type ParseError struct {
	File string
	Line int
	Key  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("error parsing file %s at line %d (key `%s`): %v", e.File, e.Line, e.Key, e.Err)
	}
	return fmt.Sprintf("error parsing file %s at line %d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// File is the ordered content of one key/value source. Later records win on
// duplicate keys.
type File struct {
	Name    string
	Records []Record
	index   map[string]int
}

// Get returns the value stored under key.
func (f *File) Get(key string) (Value, bool) {
	i, ok := f.index[key]
	if !ok {
		return Value{}, false
	}
	return f.Records[i].Value, true
}

// Keys returns keys in first-seen order.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.Records))
	for _, r := range f.Records {
		keys = append(keys, r.Key)
	}
	return keys
}

// Parse reads records from r. name is used in error messages only.
func Parse(r io.Reader, name string) (*File, error) {
	f := &File{Name: name, index: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) < 2 || strings.HasPrefix(tokens[0], "#") {
			continue
		}
		if tokens[1] != "=" {
			continue
		}
		if len(tokens) < 4 {
			return nil, &ParseError{File: name, Line: lineNum, Key: tokens[0], Err: errors.New("missing value")}
		}

		v, err := parseValue(tokens[2], tokens[3:])
		if err != nil {
			return nil, &ParseError{File: name, Line: lineNum, Key: tokens[0], Err: err}
		}
		v.Line = lineNum
		f.set(tokens[0], v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}

	return f, nil
}

func (f *File) set(key string, v Value) {
	if i, ok := f.index[key]; ok {
		f.Records[i].Value = v
		return
	}
	f.index[key] = len(f.Records)
	f.Records = append(f.Records, Record{Key: key, Value: v})
}

func parseValue(typ string, raw []string) (Value, error) {
	switch strings.ToLower(typ) {
	case "float":
		x, err := strconv.ParseFloat(raw[0], 64)
		if err != nil {
			return Value{}, errors.Errorf("cannot parse `%s` as float", raw[0])
		}
		return Value{Kind: Float, Float: x}, nil
	case "int":
		n, err := strconv.ParseInt(raw[0], 10, 64)
		if err != nil {
			return Value{}, errors.Errorf("cannot parse `%s` as int", raw[0])
		}
		return Value{Kind: Int, Int: n}, nil
	}
	return Value{Kind: String, Str: raw[0]}, nil
}
