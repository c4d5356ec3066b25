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

package main

import (
	"os"

	"github.com/antst/mhydride/internal"
	"github.com/antst/mhydride/internal/config"
	"github.com/antst/mhydride/internal/logger"
)

// Build version, overridden with flag during build.
var version = "devel"

func main() {
	os.Exit(run())
}

func run() int {
	defer logger.Close()

	logger.L().Warnf("Metal hydride equilibrium calculator, version: %+v", version)
	cfg := config.Get()
	c := internal.NewController(cfg)
	if err := c.Run(); err != nil {
		logger.L().Errorf("Run %s failed: %v", c.RunID(), err)
		return 1
	}
	return 0
}
