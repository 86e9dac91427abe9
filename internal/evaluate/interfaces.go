package evaluate

import (
	"github.com/vvka-141/metaqa/internal/accuracy"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/internal/schema"
)

// RecordReader reads the records of one input file. ReadContent parses
// bytes the caller already read, so the records match the fingerprinted
// content.
type RecordReader interface {
	Read(path string) ([]record.Record, error)
	ReadContent(path string, content []byte) ([]record.Record, error)
}

// ReaderFactory returns the reader for a configured format.
// An empty format means "infer from the file extension".
type ReaderFactory func(format string) (RecordReader, error)

// SchemaProvider returns the schema describing a record kind.
type SchemaProvider interface {
	Schema(kind string) (*schema.Schema, error)
}

// LookupBuilder indexes the parent records matched by path by the value
// at keyPath, resolving field names through m.
type LookupBuilder interface {
	Build(path, keyPath string, m record.Matcher) (accuracy.Lookup, error)
}
