package report

import (
	"encoding/json"
	"io"

	"github.com/vvka-141/metaqa/internal/evaluate"
)

// JSONWriter encodes the whole report. Undefined rates encode as null.
type JSONWriter struct {
	Indent string
}

// Write implements Writer.
func (jw JSONWriter) Write(w io.Writer, r *evaluate.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", jw.Indent)
	return enc.Encode(r)
}
