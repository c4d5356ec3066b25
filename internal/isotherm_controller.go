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

func (c *Controller) runIsotherm() error {
	icfg := c.cfg.Isotherm
	branches, err := sweep.ParseBranchSet(icfg.Plot)
	if err != nil {
		return err
	}

	m, err := c.newModel(icfg.Material)
	if err != nil {
		return err
	}

	ds, err := sweep.Isotherm(m, sweep.Range{
		TStart:     icfg.TStart,
		TEnd:       icfg.TEnd,
		DeltaT:     icfg.DelT,
		OmegaStart: c.cfg.Sweep.OmegaStart,
		OmegaEnd:   c.cfg.Sweep.OmegaEnd,
		DeltaOmega: c.cfg.Sweep.DelOmega,
	}, branches)
	if err != nil {
		return err
	}

	paths, err := c.text.WriteIsotherm(ds, c.cfg.Output.Mode)
	if err != nil {
		return err
	}
	c.log.Infof("Isotherms of `%s`: %d series at %v written to %d file(s)",
		ds.Material, len(ds.Series), ds.Temperatures(), len(paths))

	if !c.cfg.Output.ShowChart {
		return nil
	}
	chart := output.IsothermChart(ds, c.cfg.Units.Pressure, c.cfg.Units.Temperature, c.cfg.Output.LogScale)
	_, err = c.charts.Write(c.chartName(output.IsothermFile(ds.Material)), chart)
	return err
}
