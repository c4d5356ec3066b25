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
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/antst/mhydride/internal/logger"
)

const (
	DataSheet  = "data"
	ChartSheet = "chart"

	chartWidth   = 960
	chartHeight  = 600
	logScaleBase = 10
	creator      = "mhydride"
)

type ChartSeries struct {
	Name string
	X, Y []float64
}

// Chart is a line plot of pressure against hydriding fraction.
type Chart struct {
	Title    string
	XLabel   string
	YLabel   string
	LogScale bool
	Series   []ChartSeries
}

// ChartWriter renders charts into xlsx workbooks: the series go to the data
// sheet as column pairs and a scatter line chart is placed on the chart sheet.
type ChartWriter struct {
	Dir   string
	RunID string
}

// ChartFile derives the workbook name from a data file name.
func ChartFile(dataFile string) string {
	return strings.TrimSuffix(dataFile, filepath.Ext(dataFile)) + ".xlsx"
}

func (w *ChartWriter) Write(name string, c Chart) (string, error) {
	if len(c.Series) == 0 {
		return "", errors.New("chart has no series")
	}

	path := filepath.Join(w.Dir, name)
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		return "", errors.Wrap(err, "failed to name data sheet")
	}
	if err := writeChartData(f, c.Series); err != nil {
		return "", err
	}

	if _, err := f.NewSheet(ChartSheet); err != nil {
		return "", errors.Wrap(err, "failed to create chart sheet")
	}
	if err := f.AddChart(ChartSheet, "A1", chartDefinition(c)); err != nil {
		return "", errors.Wrap(err, "failed to add chart")
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:      c.Title,
		Creator:    creator,
		Identifier: w.RunID,
	}); err != nil {
		return "", errors.Wrap(err, "failed to set workbook properties")
	}

	if err := f.SaveAs(path); err != nil {
		return "", errors.Wrapf(err, "failed to save %s", path)
	}

	logger.L().Infof("Wrote chart `%v` with %d series", path, len(c.Series))
	return path, nil
}

func writeChartData(f *excelize.File, series []ChartSeries) error {
	sw, err := f.NewStreamWriter(DataSheet)
	if err != nil {
		return errors.Wrap(err, "failed to open data sheet")
	}

	header := make([]interface{}, 0, 2*len(series))
	rows := 0
	for _, s := range series {
		header = append(header, "omega", s.Name)
		if len(s.X) > rows {
			rows = len(s.X)
		}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	for i := 0; i < rows; i++ {
		row := make([]interface{}, 2*len(series))
		for j, s := range series {
			if i < len(s.X) {
				row[2*j] = s.X[i]
				row[2*j+1] = cellValue(s.Y[i])
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return errors.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	return sw.Flush()
}

// cellValue blanks values a workbook cannot hold.
func cellValue(v float64) interface{} {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return v
}

func chartDefinition(c Chart) *excelize.Chart {
	series := make([]excelize.ChartSeries, 0, len(c.Series))
	for i, s := range c.Series {
		xCol, _ := excelize.ColumnNumberToName(2*i + 1)
		yCol, _ := excelize.ColumnNumberToName(2*i + 2)
		last := len(s.X) + 1
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", DataSheet, yCol),
			Categories: fmt.Sprintf("%s!$%s$2:$%s$%d", DataSheet, xCol, xCol, last),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", DataSheet, yCol, yCol, last),
			Marker:     excelize.ChartMarker{Symbol: "none"},
			Line:       excelize.ChartLine{Width: 1.5},
		})
	}

	yAxis := excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: c.YLabel}}, MajorGridLines: true}
	if c.LogScale {
		yAxis.LogBase = logScaleBase
	}

	return &excelize.Chart{
		Type:      excelize.Scatter,
		Series:    series,
		Title:     []excelize.RichTextRun{{Text: c.Title}},
		XAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: c.XLabel}}},
		YAxis:     yAxis,
		Legend:    excelize.ChartLegend{Position: "right"},
		Dimension: excelize.ChartDimension{Width: chartWidth, Height: chartHeight},
	}
}
