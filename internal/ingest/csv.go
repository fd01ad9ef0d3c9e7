package ingest

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"

	"github.com/geowell-tools/wellextract/internal/model"
)

// CSVOptions configures the CSV survey parser.
type CSVOptions struct {
	Delimiter rune // default ','
	Comment   rune // comment character (0 = none)
}

// ReadSurveyCSV reads survey stations from CSV with the same column
// layout as ReadSurveyXLSX. Header and other non-numeric rows are skipped.
func ReadSurveyCSV(r io.Reader, opts CSVOptions) ([]model.SurveyPoint, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	if opts.Comment != 0 {
		reader.Comment = opts.Comment
	}
	reader.FieldsPerRecord = -1 // allow variable fields

	var points []model.SurveyPoint
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "ingest: read csv row")
		}

		if p, ok := pointFromCells(record); ok {
			points = append(points, p)
		}
	}

	if len(points) == 0 {
		return nil, eris.New("ingest: no survey rows in csv input")
	}
	return points, nil
}
