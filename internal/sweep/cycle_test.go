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

package sweep

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antst/mhydride/internal/hydride_model"
)

func TestBuildCycleOrder(t *testing.T) {
	testCases := []struct {
		name  string
		r     CycleRange
		same  bool
		thigh float64
	}{
		{"typical", CycleRange{THigh: 360, TLow: 300, OmegaStart: 0.1, OmegaEnd: 0.9, DeltaOmega: 0.2}, false, 360},
		{"inverted reservoirs", CycleRange{THigh: 280, TLow: 350, OmegaStart: 0, OmegaEnd: 1, DeltaOmega: 0.5}, false, 280},
		{"same material", CycleRange{THigh: 400, TLow: 300, OmegaStart: 0.5, OmegaEnd: 0.5, DeltaOmega: 1}, true, 400},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			floating := newModel("LaNi5", 3000)
			fixed := newModel("hystor207", 2000)
			if tc.same {
				fixed = floating
			}

			c, err := BuildCycle(floating, fixed, tc.r)
			require.NoError(t, err)
			require.Len(t, c.Series, 4)

			expected := []struct {
				material string
				branch   hydride_model.Branch
				temp     float64
			}{
				{floating.Name(), hydride_model.Desorption, tc.thigh},
				{floating.Name(), hydride_model.Absorption, tc.r.TLow},
				{fixed.Name(), hydride_model.Absorption, tc.r.TLow},
				{fixed.Name(), hydride_model.Desorption, tc.r.TLow},
			}
			for i, e := range expected {
				s := c.Series[i]
				assert.Equal(t, e.material, s.Material, "series %d", i)
				assert.Equal(t, e.branch, s.Branch, "series %d", i)
				assert.Equal(t, e.temp, s.Temperature, "series %d", i)
				assert.NotEmpty(t, s.Points, "series %d", i)
			}

			assert.Equal(t, Floating, RoleOf(FloatingDesorptionHigh))
			assert.Equal(t, Floating, RoleOf(FloatingAbsorptionLow))
			assert.Equal(t, Fixed, RoleOf(FixedAbsorptionLow))
			assert.Equal(t, Fixed, RoleOf(FixedDesorptionLow))
		})
	}
}

func TestBuildCycleValues(t *testing.T) {
	floating := newModel("LaNi5", 3000)
	fixed := newModel("hystor207", 2000)
	r := CycleRange{THigh: 360, TLow: 300, OmegaStart: 0.5, OmegaEnd: 0.5, DeltaOmega: 0.1}

	c, err := BuildCycle(floating, fixed, r)
	require.NoError(t, err)

	hot := c.Series[FloatingDesorptionHigh].Points[0].Pressure
	cold := c.Series[FloatingAbsorptionLow].Points[0].Pressure
	assert.Greater(t, hot, cold, "hot desorption of the floating bed must exceed its cold absorption here")

	ref := newModel("hystor207", 2000)
	require.NoError(t, ref.SetTemperature(300))
	ref.SetHydridingFraction(0.5)
	expected, err := ref.EquilibriumPressure(hydride_model.Desorption)
	require.NoError(t, err)
	assert.Equal(t, expected, c.Series[FixedDesorptionLow].Points[0].Pressure)
}

func TestBuildCycleErrors(t *testing.T) {
	floating := newModel("LaNi5", 3000)
	fixed := newModel("hystor207", 2000)

	_, err := BuildCycle(floating, fixed, CycleRange{THigh: 360, TLow: 300, OmegaStart: 0, OmegaEnd: 1, DeltaOmega: 0})
	var rerr *RangeError
	assert.True(t, errors.As(err, &rerr))

	_, err = BuildCycle(floating, fixed, CycleRange{THigh: 360, TLow: 0, OmegaStart: 0.5, OmegaEnd: 0.5, DeltaOmega: 0.1})
	var perr *PointError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "LaNi5", perr.Material)
	assert.Equal(t, 0.0, perr.Temperature)
	assert.Equal(t, hydride_model.Absorption, perr.Branch)
}
