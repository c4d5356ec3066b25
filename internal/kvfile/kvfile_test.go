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

package kvfile

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# hystor 207 properties
# key = type value

A = float 3704.6
B = FLOAT 12.72
MW = int 58
comment = str LaNi4.7Al0.3 alloy
   short
phi = float
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(strings.Replace(sample, "phi = float\n", "", 1)), "hystor207.mhd")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "MW", "comment"}, f.Keys())

	a, ok := f.Get("A")
	require.True(t, ok)
	assert.Equal(t, Float, a.Kind)
	assert.Equal(t, 3704.6, a.Float)
	assert.Equal(t, 4, a.Line)

	mw, ok := f.Get("MW")
	require.True(t, ok)
	assert.Equal(t, Int, mw.Kind)
	n, ok := mw.Number()
	assert.True(t, ok)
	assert.Equal(t, 58.0, n)

	c, _ := f.Get("comment")
	assert.Equal(t, String, c.Kind)
	assert.Equal(t, "LaNi4.7Al0.3", c.String())
	_, ok = c.Number()
	assert.False(t, ok)

	_, ok = f.Get("short")
	assert.False(t, ok)
}

func TestParseIgnoresTrailingTokens(t *testing.T) {
	f, err := Parse(strings.NewReader(`mhydrideName = string hystor207 # main bed
A = float 2000 # K
cells = int 6 per bed
pUnits = str kpa   (gauge)
`), "card.txt")
	require.NoError(t, err)

	testCases := []struct {
		key      string
		kind     Kind
		expected string
	}{
		{"mhydrideName", String, "hystor207"},
		{"A", Float, "2000"},
		{"cells", Int, "6"},
		{"pUnits", String, "kpa"},
	}
	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			v, ok := f.Get(tc.key)
			require.True(t, ok)
			assert.Equal(t, tc.kind, v.Kind)
			assert.Equal(t, tc.expected, v.String())
		})
	}
}

func TestParseMissingValue(t *testing.T) {
	_, err := Parse(strings.NewReader(sample), "hystor207.mhd")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "hystor207.mhd", perr.File)
	assert.Equal(t, 9, perr.Line)
	assert.Equal(t, "phi", perr.Key)
}

func TestParseBadValues(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		line  int
	}{
		{"bad float", "A = float 1.0\nB = float twelve\n", 2},
		{"bad int", "# c\nMW = int 5.8\n", 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input), "card.txt")
			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tc.line, perr.Line)
			assert.Contains(t, err.Error(), "card.txt")
		})
	}
}

func TestParseDuplicateKeyKeepsLast(t *testing.T) {
	f, err := Parse(strings.NewReader("tStart = float 300\ntEnd = float 320\ntStart = int 310\n"), "card")
	require.NoError(t, err)
	assert.Equal(t, []string{"tStart", "tEnd"}, f.Keys())
	v, _ := f.Get("tStart")
	assert.Equal(t, Int, v.Kind)
	assert.Equal(t, int64(310), v.Int)
	assert.Equal(t, 3, v.Line)
}

func TestCommentWithoutSpace(t *testing.T) {
	f, err := Parse(strings.NewReader("#A = float 1\nA = float 2\n"), "card")
	require.NoError(t, err)
	v, _ := f.Get("A")
	assert.Equal(t, 2.0, v.Float)
}
