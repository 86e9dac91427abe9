package logging

import "github.com/vvka-141/metaqa/pkg/metaqa"

var _ metaqa.Logger = (*NullLogger)(nil)

// NullLogger discards everything. The evaluation runner falls back to it
// when no logger is configured.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}
func (*NullLogger) Info(string, ...interface{})    {}
func (*NullLogger) Error(string, ...interface{})   {}
