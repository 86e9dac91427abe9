package accuracy

import (
	"fmt"

	"github.com/vvka-141/metaqa/internal/findings"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/internal/stats"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Lookup maps a parent key to its canonical parent record.
type Lookup map[string]record.Record

// FieldPair names a claimed child field and the canonical parent field it
// copies. A nil Compare means Exact.
type FieldPair struct {
	Name       string
	ChildPath  string
	ParentPath string
	Compare    Comparator
}

// Spec describes how children cite their parent.
type Spec struct {
	// KeyPath is the child field holding the parent key.
	KeyPath string
	Pairs   []FieldPair

	// Child and Parent resolve field names of each side against its own
	// schema. The zero Matcher compares names literally.
	Child  record.Matcher
	Parent record.Matcher
}

// Result is the outcome of an accuracy check.
// The accuracy rate is computed over resolved children only: unresolved
// references are counted separately and never lower the rate.
type Result struct {
	Total      int
	Resolved   int
	Unresolved int

	// Mismatched counts resolved children with at least one disagreeing field.
	Mismatched int
	Metrics    []metaqa.MetricResult
}

// Evaluate compares every child with the parent its key resolves to.
//
// A child whose key is empty or unknown gets an unresolvable reference
// finding, is marked invalid and is excluded from the accuracy rate.
// A field pair is compared only when both sides are filled; missing values
// are a completeness concern. When a parent field has several values, as a
// leaf under a repeatable container does, agreeing with any of them is enough.
func Evaluate(scope string, children []record.Record, lookup Lookup, spec Spec, acc *findings.Accumulator) *Result {
	res := &Result{Total: len(children)}
	perField := stats.NewHistogram[string]()

	for _, child := range children {
		parent, ok := resolve(child, lookup, spec, acc)
		if !ok {
			res.Unresolved++
			continue
		}
		res.Resolved++

		mismatched := false
		for _, pair := range spec.Pairs {
			if compare(child, parent, pair, spec, acc) {
				continue
			}
			mismatched = true
			perField.Add(pair.Name)
		}
		if mismatched {
			res.Mismatched++
			acc.MarkInvalid(child.ID())
		}
	}

	res.Metrics = []metaqa.MetricResult{
		{Scope: scope, Criterion: metaqa.CriterionAccuracy, Metric: "accuracy rate", Content: stats.RateOf(res.Resolved-res.Mismatched, res.Resolved)},
		{Scope: scope, Criterion: metaqa.CriterionAccuracy, Metric: "resolved references", Content: metaqa.Count(res.Resolved)},
		{Scope: scope, Criterion: metaqa.CriterionAccuracy, Metric: "unresolved references", Content: metaqa.Count(res.Unresolved)},
		{Scope: scope, Criterion: metaqa.CriterionAccuracy, Metric: "mismatched records", Content: metaqa.Count(res.Mismatched)},
		{Scope: scope, Criterion: metaqa.CriterionAccuracy, Metric: "mismatches by field", Content: metaqa.Breakdown(perField.Map())},
	}
	return res
}

func resolve(child record.Record, lookup Lookup, spec Spec, acc *findings.Accumulator) (record.Record, bool) {
	keyPath := spec.KeyPath
	key, found := spec.Child.Find(child, keyPath)
	pointer := keyPath
	if found {
		pointer = key.Pointer
	}

	var f metaqa.Finding
	switch {
	case !found || !key.Value.Filled():
		f = findings.New(child.Locator(), child.ID(), pointer, metaqa.IssueUnresolvableRef, metaqa.LevelError,
			fmt.Sprintf("no parent key at %s", keyPath))
	default:
		parent, ok := lookup[key.Value.Text()]
		if ok {
			return parent, true
		}
		f = findings.New(child.Locator(), child.ID(), pointer, metaqa.IssueUnresolvableRef, metaqa.LevelError,
			fmt.Sprintf("parent %q not found", key.Value.Text()))
		f.Original = key.Value.Text()
	}

	acc.Add(f)
	acc.MarkInvalid(child.ID())
	return nil, false
}

// compare reports whether the pair agrees, writing a finding when it does not.
func compare(child, parent record.Record, pair FieldPair, spec Spec, acc *findings.Accumulator) bool {
	claimed, ok := spec.Child.Find(child, pair.ChildPath)
	if !ok || !claimed.Value.Filled() {
		return true
	}

	var canonical []string
	for _, e := range spec.Parent.FindAll(parent, pair.ParentPath) {
		if e.Value.Filled() {
			canonical = append(canonical, e.Value.Text())
		}
	}
	if len(canonical) == 0 {
		return true
	}

	agree := pair.Compare
	if agree == nil {
		agree = Exact
	}
	for _, c := range canonical {
		if agree(claimed.Value.Text(), c) {
			return true
		}
	}

	f := findings.New(child.Locator(), child.ID(), claimed.Pointer, metaqa.IssueInaccurateValue, metaqa.LevelError,
		fmt.Sprintf("%s disagrees with %s of parent %s", pair.Name, pair.ParentPath, parent.ID()))
	f.Original = claimed.Value.Text()
	f.Suggested = canonical[0]
	acc.Add(f)
	return false
}
