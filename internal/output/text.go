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
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/antst/mhydride/internal/logger"
	"github.com/antst/mhydride/internal/sweep"
	"github.com/antst/mhydride/internal/units"
)

const (
	dataSuffix = "-data.txt"

	// temperatures in names are rounded to six decimals
	nameDigits = 1e6
)

// TextWriter writes isotherm and cycle data as delimited text files.
type TextWriter struct {
	Dir             string
	Format          Format
	PressureUnit    units.PressureUnit
	TemperatureUnit units.TemperatureUnit
}

// IsothermFile is the single-file name for material.
func IsothermFile(material string) string {
	return material + dataSuffix
}

// CycleFile is the single-file name for a cycle.
func CycleFile(floating, fixed string) string {
	return floating + "-" + fixed + "-mhrfc" + dataSuffix
}

// temperatureName formats t without the drift accumulated by sweep steps.
func temperatureName(t float64) string {
	return strconv.FormatFloat(math.Round(t*nameDigits)/nameDigits, 'f', -1, 64)
}

func (w *TextWriter) seriesName(s *sweep.Series) string {
	return fmt.Sprintf(
		"%s-%s%s-%s-%s",
		s.Material, temperatureName(s.Temperature), w.TemperatureUnit, w.PressureUnit, s.Branch,
	)
}

// WriteIsotherm writes ds and returns the written paths in order.
func (w *TextWriter) WriteIsotherm(ds *sweep.Dataset, mode Mode) ([]string, error) {
	if mode == Multiple {
		paths := make([]string, 0, len(ds.Series))
		for i := range ds.Series {
			s := &ds.Series[i]
			path, err := w.writeSeries(w.seriesName(s)+dataSuffix, s)
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	path, err := w.writeTable(IsothermFile(ds.Material), ds.Series)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// WriteCycle writes c in its fixed series order and returns the written paths.
func (w *TextWriter) WriteCycle(c *sweep.Cycle, mode Mode) ([]string, error) {
	prefix := c.Floating + "-" + c.Fixed + "-mhrfc"
	if mode == Multiple {
		paths := make([]string, 0, len(c.Series))
		for i := range c.Series {
			s := &c.Series[i]
			name := fmt.Sprintf("%s-%d-%s%s", prefix, i+1, w.seriesName(s), dataSuffix)
			path, err := w.writeSeries(name, s)
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	path, err := w.writeTable(CycleFile(c.Floating, c.Fixed), c.Series[:])
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// writeTable writes temperature, omega, pressure lines for every series.
func (w *TextWriter) writeTable(name string, series []sweep.Series) (string, error) {
	return w.writeFile(name, func(bw *bufio.Writer) error {
		for _, s := range series {
			for _, p := range s.Points {
				if _, err := bw.WriteString(w.Format.Line(s.Temperature, p.Omega, p.Pressure) + "\n"); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// writeSeries writes omega, pressure lines for one series.
func (w *TextWriter) writeSeries(name string, s *sweep.Series) (string, error) {
	return w.writeFile(name, func(bw *bufio.Writer) error {
		for _, p := range s.Points {
			if _, err := bw.WriteString(w.Format.Line(p.Omega, p.Pressure) + "\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

func (w *TextWriter) writeFile(name string, fill func(*bufio.Writer) error) (string, error) {
	path := filepath.Join(w.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create output file")
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := fill(bw); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	if err := bw.Flush(); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to close %s", path)
	}

	logger.L().Infof("Wrote `%v`", path)
	return path, nil
}
