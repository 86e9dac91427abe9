package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vvka-141/metaqa/internal/evaluate"
)

// Mode selects how TableWriter renders its tables.
type Mode int

const (
	ModeText     Mode = iota // box-drawing terminal tables
	ModeMarkdown             // GitHub-flavoured markdown
)

// TableWriter renders sources, metrics and findings as three tables
// followed by a one-line summary.
type TableWriter struct {
	Mode Mode

	// MaxDescription wraps the description column; 0 means unlimited.
	MaxDescription int
}

// Write implements Writer.
func (tw TableWriter) Write(w io.Writer, r *evaluate.Report) error {
	sections := []struct {
		title string
		t     table.Writer
	}{
		{"Sources", tw.sources(r)},
		{"Metrics", tw.metrics(r)},
		{"Findings", tw.findings(r)},
	}

	if _, err := fmt.Fprintf(w, "%s %s\n\n", tw.heading("Run"), r.RunID); err != nil {
		return err
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", tw.heading(s.title), tw.render(s.t)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d finding(s), %d of %d record(s) invalid, pass rate %s\n",
		r.Summary.Findings, r.Summary.InvalidRecords, r.Summary.Records, r.Summary.PassRate)
	return err
}

func (tw TableWriter) heading(title string) string {
	if tw.Mode == ModeMarkdown {
		return "## " + title
	}
	return title
}

func (tw TableWriter) newTable() table.Writer {
	t := table.NewWriter()
	if tw.Mode == ModeText {
		t.SetStyle(table.StyleLight)
	}
	return t
}

func (tw TableWriter) render(t table.Writer) string {
	if tw.Mode == ModeMarkdown {
		return t.RenderMarkdown()
	}
	return t.Render()
}

func (tw TableWriter) sources(r *evaluate.Report) table.Writer {
	t := tw.newTable()
	t.AppendHeader(table.Row{"Source", "Kind", "Files", "Records", "Invalid"})
	for _, s := range r.Sources {
		t.AppendRow(table.Row{s.Path, s.Kind, len(s.Files), s.Records, s.Invalid})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return t
}

func (tw TableWriter) metrics(r *evaluate.Report) table.Writer {
	t := tw.newTable()
	t.AppendHeader(table.Row{"Scope", "Criterion", "Metric", "Value"})
	for _, m := range r.AllMetrics() {
		t.AppendRow(table.Row{m.Scope, m.Criterion, m.Metric, FormatContent(m.Content)})
	}
	return t
}

func (tw TableWriter) findings(r *evaluate.Report) table.Writer {
	t := tw.newTable()
	t.AppendHeader(table.Row{"Location", "Pointer", "Level", "Issue", "Description", "Suggested"})
	for _, f := range r.Findings {
		t.AppendRow(table.Row{f.Locator, f.Pointer, f.Level, f.IssueType, f.Description, f.Suggested})
	}
	if tw.MaxDescription > 0 {
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 5, WidthMax: tw.MaxDescription}})
	}
	return t
}
