package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vvka-141/metaqa/internal/evaluate"
)

var csvHeader = []string{"id", "source", "row", "record", "pointer", "level", "issue", "description", "original", "suggested"}

// CSVWriter writes one RFC 4180 line per finding, with a header line.
type CSVWriter struct{}

// Write implements Writer.
func (CSVWriter) Write(w io.Writer, r *evaluate.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, f := range r.Findings {
		row := ""
		if f.Locator.Row > 0 {
			row = strconv.Itoa(f.Locator.Row)
		}
		err := cw.Write([]string{
			f.ID.String(), f.Locator.Source, row, f.RecordID, f.Pointer,
			f.Level.String(), string(f.IssueType), f.Description, f.Original, f.Suggested,
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
