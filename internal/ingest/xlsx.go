// Package ingest parses structured survey files (XLSX, CSV) into survey
// points, for wells whose trajectory arrives as a spreadsheet rather than
// report text.
package ingest

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/geowell-tools/wellextract/internal/model"
)

// surveyConfidence marks points read from structured files; tabular input
// carries no parsing ambiguity.
const surveyConfidence = 1.0

// XLSXOptions configures the XLSX survey parser.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
	SkipRows   int    // number of header rows to skip
}

// ReadSurveyXLSX reads survey stations from an XLSX sheet laid out as
// MD, TVD, optional inclination, optional azimuth. Non-numeric rows
// (headers, footers) are skipped.
func ReadSurveyXLSX(path string, opts XLSXOptions) ([]model.SurveyPoint, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open xlsx")
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}

	var points []model.SurveyPoint
	for i, row := range sheet.Rows {
		if i < opts.SkipRows {
			continue
		}
		if p, ok := pointFromCells(rowToStrings(row)); ok {
			points = append(points, p)
		}
	}

	if len(points) == 0 {
		return nil, eris.Errorf("ingest: no survey rows in %s", path)
	}
	return points, nil
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("ingest: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("ingest: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}

	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}

// pointFromCells parses one station row. The first two cells must be
// numeric MD and TVD; inclination and azimuth follow when present.
func pointFromCells(cells []string) (model.SurveyPoint, bool) {
	if len(cells) < 2 {
		return model.SurveyPoint{}, false
	}

	md, err := parseCell(cells[0])
	if err != nil {
		return model.SurveyPoint{}, false
	}
	tvd, err := parseCell(cells[1])
	if err != nil {
		return model.SurveyPoint{}, false
	}

	p := model.SurveyPoint{MD: md, TVD: tvd, Confidence: surveyConfidence}
	if len(cells) > 2 {
		if inc, err := parseCell(cells[2]); err == nil {
			p.Inclination = &inc
		}
	}
	if len(cells) > 3 {
		if az, err := parseCell(cells[3]); err == nil {
			p.Azimuth = &az
		}
	}
	return p, true
}

func parseCell(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
