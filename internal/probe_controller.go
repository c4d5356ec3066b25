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
	"fmt"

	"github.com/pkg/errors"

	"github.com/antst/mhydride/internal/hydride_model"
)

var errNoMaterial = errors.New("no material configured, set mhydrideName, floatMhydrideName or fixedMhydrideName")

// probeMaterials returns the configured material names, first seen first.
func (c *Controller) probeMaterials() []string {
	var names []string
	seen := make(map[string]bool)
	for _, n := range []string{c.cfg.Isotherm.Material, c.cfg.Cycle.Floating, c.cfg.Cycle.Fixed} {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	return names
}

// runProbe prints one line per material:
//
//	<material> T=<T><tUnit> omega=<omega> PeqA=<P> PeqD=<P> <pUnit>
func (c *Controller) runProbe() error {
	names := c.probeMaterials()
	if len(names) == 0 {
		return errNoMaterial
	}

	for _, name := range names {
		m, err := c.newModel(name)
		if err != nil {
			return err
		}
		if t := c.cfg.Probe.Temperature; t != nil {
			if err := m.SetTemperature(*t); err != nil {
				return err
			}
		}
		m.SetHydridingFraction(c.cfg.Probe.Omega)

		pa, err := m.EquilibriumPressure(hydride_model.Absorption)
		if err != nil {
			return err
		}
		pd, err := m.EquilibriumPressure(hydride_model.Desorption)
		if err != nil {
			return err
		}

		c.log.Debugf("Probe `%s` at %gK: A=%g D=%g %s", name, m.Kelvin(), pa, pd, m.PressureUnit())
		if _, err := fmt.Fprintf(c.out, "%s T=%g%s omega=%g PeqA=%g PeqD=%g %s\n",
			name, m.Temperature(), m.TemperatureUnit(), m.HydridingFraction(), pa, pd, m.PressureUnit()); err != nil {
			return errors.Wrap(err, "failed to print probe result")
		}
	}
	return nil
}
