package record

import (
	"strings"

	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Entry is one leaf of a record.
type Entry struct {
	// Name is the field path relative to the record, e.g. "contributors/name".
	Name string

	// Pointer locates the leaf inside its source: the column header for rows,
	// a JSON pointer for trees.
	Pointer string

	Value Value
}

// Record is one evaluated metadata unit.
// Implementations are immutable once read.
type Record interface {
	// ID is unique within a run.
	ID() string
	Locator() metaqa.Locator

	// Entries returns every leaf in source order.
	Entries() []Entry
}

// Find returns the first entry of r whose name matches name.
// Names are compared case-insensitively after trimming whitespace.
func Find(r Record, name string) (Entry, bool) {
	for _, e := range r.Entries() {
		if sameName(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

// FindAll returns every entry of r whose name matches name, in source order.
// Leaves under repeatable containers yield one entry per instance.
func FindAll(r Record, name string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if sameName(e.Name, name) {
			out = append(out, e)
		}
	}
	return out
}

// SameLeaves reports whether a and b carry the same filled leaves:
// equal names with equal values, irrespective of entry order.
// Unfilled leaves are ignored.
func SameLeaves(a, b Record) bool {
	left, right := filledLeaves(a), filledLeaves(b)
	if len(left) != len(right) {
		return false
	}
	for name, lv := range left {
		rv, ok := right[name]
		if !ok || len(lv) != len(rv) {
			return false
		}
		for i := range lv {
			if !lv[i].Equal(rv[i]) {
				return false
			}
		}
	}
	return true
}

func filledLeaves(r Record) map[string][]Value {
	out := make(map[string][]Value)
	for _, e := range r.Entries() {
		if !e.Value.Filled() {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(e.Name))
		out[key] = append(out[key], e.Value)
	}
	return out
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
