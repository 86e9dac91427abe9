package duplicate

import (
	"fmt"
	"strings"

	"github.com/vvka-141/metaqa/internal/findings"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/internal/stats"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Group holds the IDs of records judged duplicates of each other,
// in record order.
type Group []string

// Selector extracts the identity-bearing fields of a record.
type Selector struct {
	Fields []string

	// Match resolves field names; the zero Matcher compares them literally.
	Match record.Matcher
}

// IdentityFields returns a selector over the given field paths.
func IdentityFields(fields ...string) Selector {
	return Selector{Fields: fields}
}

// Using returns a copy of s resolving field names through m.
func (s Selector) Using(m record.Matcher) Selector {
	s.Match = m
	return s
}

// Select returns one entry per identity field. Absent fields yield a
// null entry named after the field.
func (s Selector) Select(r record.Record) []record.Entry {
	out := make([]record.Entry, len(s.Fields))
	for i, f := range s.Fields {
		e, ok := s.Match.Find(r, f)
		if !ok {
			e = record.Entry{Name: f, Value: record.Null()}
		}
		out[i] = e
	}
	return out
}

// Identical reports whether two selections match: every identity value
// filled on both sides and exactly equal. A selector without fields never
// matches.
func (s Selector) Identical(a, b []record.Entry) bool {
	if len(s.Fields) == 0 || len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Value.Filled() || !b[i].Value.Filled() {
			return false
		}
		if !a[i].Value.Equal(b[i].Value) {
			return false
		}
	}
	return true
}

// Result is the outcome of a top-level duplicate check.
type Result struct {
	Groups  []Group
	Metrics []metaqa.MetricResult
}

// Detect partitions records by the selector's identity fields.
// Every member of a group gets a duplicate finding and is marked invalid.
func Detect(scope string, records []record.Record, sel Selector, acc *findings.Accumulator) (*Result, error) {
	keys := make([][]record.Entry, len(records))
	for i, r := range records {
		keys[i] = sel.Select(r)
	}

	parts, err := Partition(len(records), func(i, j int) bool {
		return sel.Identical(keys[i], keys[j])
	})
	if err != nil {
		return nil, fmt.Errorf("duplicates in %s: %w", scope, err)
	}

	res := &Result{Groups: make([]Group, 0, len(parts))}
	sizes := stats.NewHistogram[int]()
	inGroups := 0

	for _, part := range parts {
		group := make(Group, len(part))
		for k, idx := range part {
			group[k] = records[idx].ID()
		}
		res.Groups = append(res.Groups, group)
		sizes.Add(len(group))
		inGroups += len(group)

		for k, idx := range part {
			rec := records[idx]
			pointer := ""
			if len(keys[idx]) > 0 {
				pointer = keys[idx][0].Pointer
			}
			f := findings.New(rec.Locator(), rec.ID(), pointer, metaqa.IssueDuplicateRecord, metaqa.LevelError,
				fmt.Sprintf("shares %s with %s", strings.Join(sel.Fields, ", "), strings.Join(others(group, k), ", ")))
			f.Original = describe(keys[idx])
			acc.Add(f)
		}
		acc.MarkInvalidAll(group)
	}

	res.Metrics = []metaqa.MetricResult{
		{Scope: scope, Criterion: metaqa.CriterionUniqueness, Metric: "uniqueness rate", Content: stats.RateOf(len(records)-inGroups, len(records))},
		{Scope: scope, Criterion: metaqa.CriterionUniqueness, Metric: "duplicate groups", Content: metaqa.Count(len(res.Groups))},
		{Scope: scope, Criterion: metaqa.CriterionUniqueness, Metric: "duplicate records", Content: metaqa.Count(inGroups)},
		{Scope: scope, Criterion: metaqa.CriterionUniqueness, Metric: "duplicate group sizes", Content: metaqa.Distribution(sizes.Map())},
	}
	return res, nil
}

func others(group Group, self int) []string {
	out := make([]string, 0, len(group)-1)
	for k, id := range group {
		if k != self {
			out = append(out, id)
		}
	}
	return out
}

func describe(entries []record.Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Name + "=" + e.Value.Text()
	}
	return strings.Join(parts, "; ")
}
