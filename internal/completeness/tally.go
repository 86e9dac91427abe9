package completeness

import (
	"fmt"
	"strings"

	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/internal/schema"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Counts is the filled and total number of governed fields.
type Counts struct {
	Total  int `json:"total"`
	Filled int `json:"filled"`
}

func (c Counts) check() error {
	if c.Total < 0 || c.Filled < 0 || c.Filled > c.Total {
		return fmt.Errorf("tally %d/%d out of bounds: %w", c.Filled, c.Total, metaqa.ErrInvariantViolation)
	}
	return nil
}

// Missing is a governed leaf a record does not fill.
type Missing struct {
	Leaf schema.Leaf

	// Pointer locates the leaf in the record: the offending entry when the
	// record carries the field empty, otherwise where it would be.
	Pointer string
}

// Tally is the completion tally of one record.
type Tally struct {
	RecordID string
	ByTier   map[metaqa.Tier]Counts
	Overall  Counts

	// Unfilled lists the governed leaves the record does not fill,
	// in schema order.
	Unfilled []Missing
}

// Check verifies that every count is within bounds.
func (t Tally) Check() error {
	for _, tier := range metaqa.Tiers {
		c, ok := t.ByTier[tier]
		if !ok {
			continue
		}
		if err := c.check(); err != nil {
			return fmt.Errorf("record %s, tier %s: %w", t.RecordID, tier, err)
		}
	}
	if err := t.Overall.check(); err != nil {
		return fmt.Errorf("record %s, overall: %w", t.RecordID, err)
	}
	return nil
}

// ComputeTally counts the filled governed leaves of rec per tier.
func ComputeTally(rec record.Record, c *schema.Classifier) Tally {
	filled := make(map[string]bool)
	present := make(map[string]string)
	for _, e := range rec.Entries() {
		p, ok := c.Canonical(e.Name)
		if !ok {
			continue
		}
		if _, seen := present[p]; !seen {
			present[p] = e.Pointer
		}
		if e.Value.Filled() {
			filled[p] = true
		}
	}

	t := Tally{
		RecordID: rec.ID(),
		ByTier:   make(map[metaqa.Tier]Counts, len(metaqa.Tiers)),
	}
	for _, leaf := range c.Leaves() {
		counts := t.ByTier[leaf.Tier]
		counts.Total++
		t.Overall.Total++
		if filled[leaf.Path] {
			counts.Filled++
			t.Overall.Filled++
		} else {
			pointer, ok := present[leaf.Path]
			if !ok {
				pointer = absentPointer(rec, leaf.Path)
			}
			t.Unfilled = append(t.Unfilled, Missing{Leaf: leaf, Pointer: pointer})
		}
		t.ByTier[leaf.Tier] = counts
	}
	return t
}

// absentPointer returns where a missing leaf would live: the schema path for
// rows, a JSON pointer for trees.
func absentPointer(rec record.Record, path string) string {
	if rec.Locator().Shape == metaqa.ShapeRow {
		return path
	}
	base := ""
	if p, ok := rec.(interface{ Pointer() string }); ok {
		base = p.Pointer()
	}
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = record.EscapePointer(s)
	}
	return base + "/" + strings.Join(segments, "/")
}
