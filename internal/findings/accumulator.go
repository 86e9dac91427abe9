package findings

import (
	"bytes"
	"sort"

	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Accumulator is the append-only finding collector of one run or run shard.
type Accumulator struct {
	findings []metaqa.Finding
	invalid  map[string]struct{}
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{invalid: make(map[string]struct{})}
}

// Add appends a finding.
func (a *Accumulator) Add(f metaqa.Finding) {
	a.findings = append(a.findings, f)
}

// MarkInvalid records that id has at least one blocking finding.
func (a *Accumulator) MarkInvalid(id string) {
	a.invalid[id] = struct{}{}
}

// MarkInvalidAll marks every id in ids.
func (a *Accumulator) MarkInvalidAll(ids []string) {
	for _, id := range ids {
		a.MarkInvalid(id)
	}
}

// Findings returns a copy of the findings in insertion order.
func (a *Accumulator) Findings() []metaqa.Finding {
	out := make([]metaqa.Finding, len(a.findings))
	copy(out, a.findings)
	return out
}

// Len returns the number of findings.
func (a *Accumulator) Len() int {
	return len(a.findings)
}

// IsInvalid reports whether id was marked invalid.
func (a *Accumulator) IsInvalid(id string) bool {
	_, ok := a.invalid[id]
	return ok
}

// InvalidIDs returns the invalid record IDs, sorted.
func (a *Accumulator) InvalidIDs() []string {
	out := make([]string, 0, len(a.invalid))
	for id := range a.invalid {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Merge appends other's findings in their order and unions the invalid sets.
func (a *Accumulator) Merge(other *Accumulator) {
	if other == nil {
		return
	}
	a.findings = append(a.findings, other.findings...)
	for id := range other.invalid {
		a.invalid[id] = struct{}{}
	}
}

// Sorted returns the findings ordered by source, row, pointer, issue type
// and ID. The order depends only on the findings themselves, so it is stable
// across parallel runs whatever order the shards finished in.
func (a *Accumulator) Sorted() []metaqa.Finding {
	out := a.Findings()
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func less(x, y metaqa.Finding) bool {
	if x.Locator.Source != y.Locator.Source {
		return x.Locator.Source < y.Locator.Source
	}
	if x.Locator.Row != y.Locator.Row {
		return x.Locator.Row < y.Locator.Row
	}
	if x.Pointer != y.Pointer {
		return x.Pointer < y.Pointer
	}
	if x.IssueType != y.IssueType {
		return x.IssueType < y.IssueType
	}
	return bytes.Compare(x.ID[:], y.ID[:]) < 0
}
