package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vvka-141/metaqa/internal/evaluate"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Writer renders a report to w.
type Writer interface {
	Write(w io.Writer, r *evaluate.Report) error
}

// Format names accepted by ForFormat.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatCSV      = "csv"
)

// ForFormat returns the writer for a format name.
func ForFormat(name string) (Writer, error) {
	switch strings.ToLower(name) {
	case "", FormatText:
		return TableWriter{Mode: ModeText}, nil
	case FormatMarkdown, "md":
		return TableWriter{Mode: ModeMarkdown}, nil
	case FormatJSON:
		return JSONWriter{Indent: "  "}, nil
	case FormatCSV:
		return CSVWriter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q: %w", name, metaqa.ErrInvalidConfig)
}

// FormatContent renders a metric value as a single cell.
// Distribution and breakdown buckets are listed in key order.
func FormatContent(c metaqa.Content) string {
	switch v := c.(type) {
	case nil:
		return ""
	case metaqa.Rate:
		return v.String()
	case metaqa.Count:
		return strconv.Itoa(int(v))
	case metaqa.Distribution:
		keys := make([]int, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%d:%d", k, v[k])
		}
		return strings.Join(parts, " ")
	case metaqa.Breakdown:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%d", k, v[k])
		}
		return strings.Join(parts, "; ")
	}
	return fmt.Sprint(c)
}
