package schema

import (
	"strings"

	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Normalize folds a field name or path for classification:
// surrounding whitespace trimmed, '?', '/', '(' and ')' removed, lower-cased.
func Normalize(name string) string {
	name = strings.TrimSpace(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case '?', '/', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// Classifier maps record field names to canonical schema paths and tiers.
// It precomputes its index once per schema; share one Classifier across all
// records evaluated against the same schema.
//
// Index keys are the normalized full path of every leaf and, when it is unique
// within the schema, the normalized leaf name. On a key collision the leaf
// visited first by the Navigator wins.
type Classifier struct {
	schema *Schema
	leaves []Leaf
	index  map[string]string
	tiers  map[string]metaqa.Tier
}

// NewClassifier builds the normalized-name index for s.
func NewClassifier(s *Schema) *Classifier {
	leaves := NewNavigator(s).Leaves()

	c := &Classifier{
		schema: s,
		leaves: leaves,
		index:  make(map[string]string, len(leaves)*2),
		tiers:  make(map[string]metaqa.Tier, len(leaves)),
	}

	nameCount := make(map[string]int, len(leaves))
	for _, l := range leaves {
		c.tiers[l.Path] = l.Tier
		if _, taken := c.index[Normalize(l.Path)]; !taken {
			c.index[Normalize(l.Path)] = l.Path
		}
		nameCount[Normalize(leafName(l.Path))]++
	}

	for _, l := range leaves {
		key := Normalize(leafName(l.Path))
		if nameCount[key] != 1 {
			continue
		}
		if _, taken := c.index[key]; !taken {
			c.index[key] = l.Path
		}
	}

	return c
}

// Schema returns the schema the classifier was built from.
func (c *Classifier) Schema() *Schema {
	return c.schema
}

// Leaves returns the governed leaves in navigator order.
func (c *Classifier) Leaves() []Leaf {
	return c.leaves
}

// Canonical returns the schema path a record field name maps to.
func (c *Classifier) Canonical(name string) (string, bool) {
	p, ok := c.index[Normalize(name)]
	return p, ok
}

// Classify returns the tier of a record field name.
// Unknown fields have no tier and must be ignored by callers.
func (c *Classifier) Classify(name string) (metaqa.Tier, bool) {
	p, ok := c.Canonical(name)
	if !ok {
		return 0, false
	}
	return c.tiers[p], true
}

// Tiers returns the tiers present in the schema, in metaqa.Tiers order.
func (c *Classifier) Tiers() []metaqa.Tier {
	present := make(map[metaqa.Tier]bool, len(metaqa.Tiers))
	for _, l := range c.leaves {
		present[l.Tier] = true
	}

	var out []metaqa.Tier
	for _, t := range metaqa.Tiers {
		if present[t] {
			out = append(out, t)
		}
	}
	return out
}

func leafName(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
