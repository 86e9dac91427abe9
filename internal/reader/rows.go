package reader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/vvka-141/metaqa/internal/files"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Rows reads delimited files. Files ending in .tsv or .tab are tab-separated,
// everything else comma-separated.
type Rows struct {
	files files.Provider
}

// NewRows creates a row reader over p.
func NewRows(p files.Provider) *Rows {
	return &Rows{files: p}
}

// Read implements evaluate.RecordReader.
func (r *Rows) Read(filePath string) ([]record.Record, error) {
	content, err := r.files.ReadFile(filePath)
	if err != nil {
		return nil, readError(filePath, err)
	}
	return r.ReadContent(filePath, content)
}

// ReadContent parses content already read from filePath.
func (r *Rows) ReadContent(filePath string, content []byte) ([]record.Record, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(content))
	cr.Comma = delimiter(filePath)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, csvError(filePath, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var out []record.Record
	for n := 1; ; n++ {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(filePath, err)
		}
		if len(cells) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, &SourceError{
				Path:    filePath,
				Line:    line,
				Message: "row has more cells than the header has columns",
				Hint:    "Quote cells that contain the delimiter.",
				Err:     metaqa.ErrUnsupportedFormat,
			}
		}
		out = append(out, record.NewRow(filePath, n, header, cells))
	}
	return out, nil
}

func delimiter(filePath string) rune {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".tsv", ".tab":
		return '\t'
	default:
		return ','
	}
}

func csvError(filePath string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &SourceError{
			Path:    filePath,
			Line:    pe.Line,
			Column:  pe.Column,
			Message: pe.Err.Error(),
			Err:     metaqa.ErrUnsupportedFormat,
		}
	}
	return &SourceError{Path: filePath, Message: err.Error(), Err: err}
}
