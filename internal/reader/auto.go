package reader

import (
	"fmt"
	"path"
	"strings"

	"github.com/vvka-141/metaqa/internal/files"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Input formats.
const (
	FormatRows = "rows"
	FormatTree = "tree"
)

// FormatOf infers the input format from a file extension.
func FormatOf(filePath string) (string, error) {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".csv", ".tsv", ".tab":
		return FormatRows, nil
	case ".json", ".yaml", ".yml":
		return FormatTree, nil
	}
	return "", fmt.Errorf("cannot infer the format of %s: %w", filePath, metaqa.ErrUnsupportedFormat)
}

// Auto dispatches to Rows or Trees by file extension, unless a format
// is forced.
type Auto struct {
	rows   *Rows
	trees  *Trees
	format string
}

// NewAuto creates a dispatching reader. An empty format infers it per file.
func NewAuto(p files.Provider, format string) (*Auto, error) {
	switch format {
	case "", FormatRows, FormatTree:
	default:
		return nil, fmt.Errorf("unknown format %q (want rows or tree): %w", format, metaqa.ErrUnsupportedFormat)
	}
	return &Auto{rows: NewRows(p), trees: NewTrees(p), format: format}, nil
}

// Read implements evaluate.RecordReader.
func (a *Auto) Read(filePath string) ([]record.Record, error) {
	format, err := a.formatOf(filePath)
	if err != nil {
		return nil, err
	}
	if format == FormatRows {
		return a.rows.Read(filePath)
	}
	return a.trees.Read(filePath)
}

// ReadContent implements evaluate.RecordReader.
func (a *Auto) ReadContent(filePath string, content []byte) ([]record.Record, error) {
	format, err := a.formatOf(filePath)
	if err != nil {
		return nil, err
	}
	if format == FormatRows {
		return a.rows.ReadContent(filePath, content)
	}
	return a.trees.ReadContent(filePath, content)
}

func (a *Auto) formatOf(filePath string) (string, error) {
	if a.format != "" {
		return a.format, nil
	}
	return FormatOf(filePath)
}
