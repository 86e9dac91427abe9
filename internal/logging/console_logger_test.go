package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	NewWriterLogger(&buf, true).Verbose("test message: %s", "value")
	assert.Equal(t, "[VERBOSE] test message: value\n", buf.String())

	buf.Reset()
	NewWriterLogger(&buf, false).Verbose("test message: %s", "value")
	assert.Empty(t, buf.String())
}

func TestConsoleLogger_InfoAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)

	logger.Info("info message: %s", "value")
	logger.Error("100%% broken")

	assert.Equal(t, "info message: value\n[ERROR] 100%% broken\n", buf.String(),
		"messages without args are written verbatim")
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 30)
	for _, line := range lines {
		assert.Regexp(t, `^(\[VERBOSE\] verbose|\[ERROR\] error|message) \d$`, line)
	}
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	l.Verbose("x")
	l.Info("x %d", 1)
	l.Error("x")
}
