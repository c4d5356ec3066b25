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

package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/antst/mhydride/internal/config"
	"github.com/antst/mhydride/internal/hydride_model"
	"github.com/antst/mhydride/internal/material"
	"github.com/antst/mhydride/internal/output"
)

const (
	demoMaterial  = "A = float 2000\nB = float 10\nphi = float 1\nphi0 = float 0.5\nbeta = float 0\n"
	otherMaterial = "A = float 3704.6\nB = float 12.72\nphi = float 0.227\nphi0 = float 0.1\nbeta = float 0.2\n"
)

type fixture struct {
	materials string
	out       string
	stdout    *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{materials: t.TempDir(), out: t.TempDir(), stdout: &bytes.Buffer{}}
	require.NoError(t, os.WriteFile(filepath.Join(f.materials, "demo"+material.Extension), []byte(demoMaterial), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(f.materials, "other"+material.Extension), []byte(otherMaterial), 0o644))
	return f
}

// controller loads card with the mode flags and points it at the fixture dirs.
func (f *fixture) controller(t *testing.T, card string, flags ...string) *Controller {
	t.Helper()
	args := []string{"mhydride", "-d", f.materials, "-o", f.out}
	if card != "" {
		path := filepath.Join(t.TempDir(), "card.txt")
		require.NoError(t, os.WriteFile(path, []byte(card), 0o644))
		args = append(args, "-f", path)
	}
	cfg, err := config.Load(append(args, flags...))
	require.NoError(t, err)
	return newController(cfg, material.NewStore(f.materials), f.stdout)
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

const isothermCard = `mhydrideName = str demo
tStart = float 300
tEnd = float 320
delT = float 10
omegaStart = float 0
omegaEnd = float 1
delOmega = float 0.25
`

func TestIsothermSingleFile(t *testing.T) {
	f := newFixture(t)
	c := f.controller(t, isothermCard+"showChart = str true\n", "-c")
	require.NoError(t, c.Run())

	lines := readLines(t, filepath.Join(f.out, output.IsothermFile("demo")))
	require.Len(t, lines, 3*2*5)
	assert.Equal(t, "300.000,  0.000, 28.032", lines[0])
	assert.Equal(t, "300.000,  0.500, 28.032", lines[2])
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "320.000,  1.000, "), lines[len(lines)-1])

	wb, err := excelize.OpenFile(filepath.Join(f.out, "demo-data.xlsx"))
	require.NoError(t, err)
	defer wb.Close()
	props, err := wb.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, c.RunID(), props.Identifier)

	assert.Empty(t, f.stdout.String(), "probe does not run with -c")
}

func TestIsothermMultipleFiles(t *testing.T) {
	f := newFixture(t)
	card := isothermCard + "plot = str A\noutputFile = str multiple\ndelimiter = str space\npUnits = str kpa\n"
	require.NoError(t, f.controller(t, card, "-c").Run())

	for _, temp := range []string{"300", "310", "320"} {
		lines := readLines(t, filepath.Join(f.out, "demo-"+temp+"k-kpa-A-data.txt"))
		assert.Len(t, lines, 5)
	}
	_, err := os.Stat(filepath.Join(f.out, "demo-300k-kpa-D-data.txt"))
	assert.True(t, os.IsNotExist(err))

	lines := readLines(t, filepath.Join(f.out, "demo-300k-kpa-A-data.txt"))
	fields := strings.Fields(lines[2])
	require.Len(t, fields, 2)
	p, err := strconv.ParseFloat(fields[1], 64)
	require.NoError(t, err)
	assert.InDelta(t, 28.032*101.325, p, 0.2)
}

func TestCycle(t *testing.T) {
	f := newFixture(t)
	card := "floatMhydrideName = str other\nfixedMhydrideName = str demo\ntHi = float 360\ntLow = float 300\n" +
		"omegaStart = float 0.25\nomegaEnd = float 0.75\ndelOmega = float 0.25\nnumberFormat = str exp\n" +
		"showChart = str yes\nchartFile = str cycle.xlsx\nlogScale = str on\n"
	require.NoError(t, f.controller(t, card, "-m").Run())

	lines := readLines(t, filepath.Join(f.out, output.CycleFile("other", "demo")))
	require.Len(t, lines, 4*3)
	assert.True(t, strings.HasPrefix(lines[0], "3.600e+02, 2.500e-01, "))
	for _, l := range lines[3:] {
		assert.True(t, strings.HasPrefix(l, "3.000e+02, "), l)
	}

	wb, err := excelize.OpenFile(filepath.Join(f.out, "cycle.xlsx"))
	require.NoError(t, err)
	defer wb.Close()
	rows, err := wb.GetRows(output.DataSheet)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "1 float: other 360k D", rows[0][1])
	assert.Equal(t, "4 fixed: demo 300k D", rows[0][7])
}

func TestCycleSameMaterialMultipleFiles(t *testing.T) {
	f := newFixture(t)
	card := "floatMhydrideName = str demo\nfixedMhydrideName = str demo\ntHi = float 360\ntLow = float 300\n" +
		"delOmega = float 0.5\noutputFile = str multiple\n"
	require.NoError(t, f.controller(t, card, "-m").Run())

	for _, name := range []string{
		"demo-demo-mhrfc-1-demo-360k-atm-D-data.txt",
		"demo-demo-mhrfc-2-demo-300k-atm-A-data.txt",
		"demo-demo-mhrfc-3-demo-300k-atm-A-data.txt",
		"demo-demo-mhrfc-4-demo-300k-atm-D-data.txt",
	} {
		assert.Len(t, readLines(t, filepath.Join(f.out, name)), 3, name)
	}
}

func TestProbe(t *testing.T) {
	f := newFixture(t)
	card := "mhydrideName = str demo\nfloatMhydrideName = str other\nfixedMhydrideName = str demo\n"
	require.NoError(t, f.controller(t, card).Run())

	lines := strings.Split(strings.TrimSpace(f.stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "demo T=300k omega=0.5 PeqA="), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "other T=300k omega=0.5 PeqA="), lines[1])
	assert.True(t, strings.HasSuffix(lines[0], " atm"))

	fields := strings.Fields(lines[0])
	pa, err := strconv.ParseFloat(strings.TrimPrefix(fields[3], "PeqA="), 64)
	require.NoError(t, err)
	pd, err := strconv.ParseFloat(strings.TrimPrefix(fields[4], "PeqD="), 64)
	require.NoError(t, err)
	assert.InDelta(t, 28.03, pa, 0.01)
	assert.Equal(t, pa, pd, "no hysteresis at the midpoint when beta is zero")
}

func TestProbeTemperatureUnit(t *testing.T) {
	f := newFixture(t)
	card := "mhydrideName = str demo\ntUnits = str degc\nprobeT = float 0\n"
	require.NoError(t, f.controller(t, card, "-p").Run())

	assert.True(t, strings.HasPrefix(f.stdout.String(), "demo T=0degc omega=0.5 PeqA=14.5"), f.stdout.String())
}

func TestRunErrors(t *testing.T) {
	f := newFixture(t)

	err := f.controller(t, "").Run()
	assert.True(t, errors.Is(err, errNoMaterial), "got %v", err)

	err = f.controller(t, "mhydrideName = str absent\n", "-c").Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent")

	err = f.controller(t, "mhydrideName = str demo\nprobeT = float -10\n", "-p").Run()
	var domainErr *hydride_model.DomainError
	assert.True(t, errors.As(err, &domainErr), "got %v", err)

	require.NoError(t, os.RemoveAll(f.out))
	err = f.controller(t, isothermCard, "-c").Run()
	assert.Error(t, err)
}
