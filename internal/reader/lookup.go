package reader

import (
	"fmt"

	"github.com/vvka-141/metaqa/internal/accuracy"
	"github.com/vvka-141/metaqa/internal/files"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// LookupBuilder builds parent lookups from files matched by a glob.
type LookupBuilder struct {
	files files.Provider
}

// NewLookupBuilder creates a lookup builder over p.
func NewLookupBuilder(p files.Provider) *LookupBuilder {
	return &LookupBuilder{files: p}
}

// Build reads every file matching pattern and indexes its records by the
// value at keyPath, resolving field names through m. Records with an empty
// key are skipped, and on a repeated key the first record read wins.
func (b *LookupBuilder) Build(pattern, keyPath string, m record.Matcher) (accuracy.Lookup, error) {
	matches, err := b.files.Glob(pattern)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no parent files match %s: %w", pattern, metaqa.ErrSourceNotFound)
	}

	r, err := NewAuto(b.files, "")
	if err != nil {
		return nil, err
	}

	lookup := make(accuracy.Lookup)
	for _, match := range matches {
		records, err := r.Read(match)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			key, ok := m.Find(rec, keyPath)
			if !ok || !key.Value.Filled() {
				continue
			}
			if _, taken := lookup[key.Value.Text()]; !taken {
				lookup[key.Value.Text()] = rec
			}
		}
	}
	return lookup, nil
}
