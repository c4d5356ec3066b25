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
	"github.com/antst/mhydride/internal/output"
	"github.com/antst/mhydride/internal/sweep"
)

func (c *Controller) runCycle() error {
	ccfg := c.cfg.Cycle

	floating, err := c.newModel(ccfg.Floating)
	if err != nil {
		return err
	}
	// separate model even when both materials are the same, the two
	// sides sit at different temperatures
	fixed, err := c.newModel(ccfg.Fixed)
	if err != nil {
		return err
	}

	cy, err := sweep.BuildCycle(floating, fixed, sweep.CycleRange{
		THigh:      ccfg.THigh,
		TLow:       ccfg.TLow,
		OmegaStart: c.cfg.Sweep.OmegaStart,
		OmegaEnd:   c.cfg.Sweep.OmegaEnd,
		DeltaOmega: c.cfg.Sweep.DelOmega,
	})
	if err != nil {
		return err
	}

	paths, err := c.text.WriteCycle(cy, c.cfg.Output.Mode)
	if err != nil {
		return err
	}
	c.log.Infof("MHRFC `%s`/`%s` between %g and %g%s written to %d file(s)",
		cy.Floating, cy.Fixed, ccfg.THigh, ccfg.TLow, c.cfg.Units.Temperature, len(paths))

	if !c.cfg.Output.ShowChart {
		return nil
	}
	chart := output.CycleChart(cy, c.cfg.Units.Pressure, c.cfg.Units.Temperature, c.cfg.Output.LogScale)
	_, err = c.charts.Write(c.chartName(output.CycleFile(cy.Floating, cy.Fixed)), chart)
	return err
}
