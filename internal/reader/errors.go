package reader

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// SourceError reports a problem reading an input file, with the location
// when it is known.
type SourceError struct {
	Path    string
	Line    int // 0 if unknown
	Column  int // 0 if unknown
	Message string
	Hint    string

	// Err is the underlying cause, usually a metaqa sentinel.
	Err error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	location := e.Path
	if e.Line > 0 {
		if e.Column > 0 {
			location = fmt.Sprintf("%s (line %d, col %d)", e.Path, e.Line, e.Column)
		} else {
			location = fmt.Sprintf("%s (line %d)", e.Path, e.Line)
		}
	}

	msg := fmt.Sprintf("cannot read %s: %s", location, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// readError wraps a file read failure. Missing files wrap
// metaqa.ErrSourceNotFound.
func readError(filePath string, err error) error {
	cause := err
	if errors.Is(err, fs.ErrNotExist) {
		cause = fmt.Errorf("%w: %w", metaqa.ErrSourceNotFound, err)
	}
	return &SourceError{Path: filePath, Message: err.Error(), Err: cause}
}
