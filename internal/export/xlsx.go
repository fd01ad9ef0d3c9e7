// Package export writes extraction results to XLSX workbooks for
// engineers who review well data in spreadsheets.
package export

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/geowell-tools/wellextract/internal/model"
)

// Sheet names in the exported workbook.
const (
	SheetTrajectory = "Trajectory"
	SheetCasing     = "Casing"
	SheetMerged     = "Merged Profile"
	SheetValidation = "Validation"
)

// WriteXLSX writes one well's extraction result and validation report to
// an XLSX workbook at path.
func WriteXLSX(path string, result *model.WellExtraction, report *model.ValidationReport) error {
	f := xlsx.NewFile()

	if err := addTrajectorySheet(f, result.Trajectory); err != nil {
		return err
	}
	if err := addCasingSheet(f, result.Casing); err != nil {
		return err
	}
	if err := addMergedSheet(f, result.Merged); err != nil {
		return err
	}
	if err := addValidationSheet(f, result, report); err != nil {
		return err
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save workbook %s", path)
	}
	return nil
}

func addTrajectorySheet(f *xlsx.File, points []model.SurveyPoint) error {
	sheet, err := f.AddSheet(SheetTrajectory)
	if err != nil {
		return eris.Wrap(err, "export: add trajectory sheet")
	}

	addHeader(sheet, "MD (m)", "TVD (m)", "Inclination (deg)", "Azimuth (deg)", "Confidence")
	for _, p := range points {
		row := sheet.AddRow()
		row.AddCell().SetFloat(p.MD)
		row.AddCell().SetFloat(p.TVD)
		addOptionalFloat(row, p.Inclination)
		addOptionalFloat(row, p.Azimuth)
		row.AddCell().SetFloat(p.Confidence)
	}
	return nil
}

func addCasingSheet(f *xlsx.File, intervals []model.CasingInterval) error {
	sheet, err := f.AddSheet(SheetCasing)
	if err != nil {
		return eris.Wrap(err, "export: add casing sheet")
	}

	addHeader(sheet, "Top Depth (m)", "Bottom Depth (m)", "Pipe ID (m)", "Grade", "Confidence")
	for _, iv := range intervals {
		row := sheet.AddRow()
		row.AddCell().SetFloat(iv.TopDepth)
		row.AddCell().SetFloat(iv.BottomDepth)
		row.AddCell().SetFloat(iv.PipeID)
		row.AddCell().SetString(iv.Grade)
		row.AddCell().SetFloat(iv.Confidence)
	}
	return nil
}

func addMergedSheet(f *xlsx.File, merged []model.MergedPoint) error {
	sheet, err := f.AddSheet(SheetMerged)
	if err != nil {
		return eris.Wrap(err, "export: add merged sheet")
	}

	addHeader(sheet, "MD (m)", "TVD (m)", "Inclination (deg)", "Pipe ID (m)")
	for _, p := range merged {
		row := sheet.AddRow()
		row.AddCell().SetFloat(p.MD)
		row.AddCell().SetFloat(p.TVD)
		addOptionalFloat(row, p.Inclination)
		row.AddCell().SetFloat(p.PipeID)
	}
	return nil
}

func addValidationSheet(f *xlsx.File, result *model.WellExtraction, report *model.ValidationReport) error {
	sheet, err := f.AddSheet(SheetValidation)
	if err != nil {
		return eris.Wrap(err, "export: add validation sheet")
	}

	addKV(sheet, "Well", result.WellName)
	addKV(sheet, "Valid", fmt.Sprintf("%t", report.IsValid))
	addKV(sheet, "Confidence", fmt.Sprintf("%.2f", result.Confidence))
	if result.Pressure != nil {
		addKV(sheet, "Pressure (bar)", fmt.Sprintf("%.1f (%s)", result.Pressure.Bar, result.Pressure.Context))
	}
	if result.Temperature != nil {
		addKV(sheet, "Temperature (C)", fmt.Sprintf("%.1f", result.Temperature.Celsius))
	}

	for _, e := range report.Errors {
		addKV(sheet, "Error", e)
	}
	for _, w := range report.Warnings {
		addKV(sheet, "Warning", w)
	}
	for _, r := range report.Recommendations {
		addKV(sheet, "Recommendation", r)
	}
	return nil
}

func addHeader(sheet *xlsx.Sheet, names ...string) {
	row := sheet.AddRow()
	for _, n := range names {
		row.AddCell().SetString(n)
	}
}

func addKV(sheet *xlsx.Sheet, key, value string) {
	row := sheet.AddRow()
	row.AddCell().SetString(key)
	row.AddCell().SetString(value)
}

// addOptionalFloat writes the value or leaves the cell blank when the
// field was not measured.
func addOptionalFloat(row *xlsx.Row, v *float64) {
	cell := row.AddCell()
	if v != nil {
		cell.SetFloat(*v)
	}
}
