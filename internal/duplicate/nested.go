package duplicate

import (
	"fmt"

	"github.com/vvka-141/metaqa/internal/findings"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/internal/stats"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// DetectNested partitions the sub-elements of tree's list sub by leaf
// equality. Every group member after the first gets a duplicate sub-record
// finding pointing at the sub-element.
func DetectNested(tree *record.Tree, sub string, acc *findings.Accumulator) ([]Group, error) {
	children := tree.Children(sub)

	parts, err := Partition(len(children), func(i, j int) bool {
		return record.SameLeaves(children[i], children[j])
	})
	if err != nil {
		return nil, fmt.Errorf("nested duplicates in %s/%s: %w", tree.ID(), sub, err)
	}

	groups := make([]Group, 0, len(parts))
	for _, part := range parts {
		group := make(Group, len(part))
		for k, idx := range part {
			group[k] = children[idx].ID()
		}
		groups = append(groups, group)

		first := children[part[0]]
		for _, idx := range part[1:] {
			f := findings.New(tree.Locator(), tree.ID(), children[idx].Pointer(), metaqa.IssueDuplicateSubRecord, metaqa.LevelWarning,
				fmt.Sprintf("%s entry repeats %s", sub, first.Pointer()))
			f.Suggested = "remove " + children[idx].Pointer()
			acc.Add(f)
		}
	}
	return groups, nil
}

// NestedResult is the outcome of checking sub-elements across a record set.
type NestedResult struct {
	// Groups maps a parent record ID to its duplicate groups.
	Groups  map[string][]Group
	Metrics []metaqa.MetricResult
}

// DetectNestedAll runs DetectNested over every tree record and every listed
// sub-element. Rows have no sub-elements and are skipped.
// The nested uniqueness rate is the share of tree records whose sub-elements
// are all unique.
func DetectNestedAll(scope string, records []record.Record, subs []string, acc *findings.Accumulator) (*NestedResult, error) {
	res := &NestedResult{Groups: make(map[string][]Group)}
	perElement := stats.NewHistogram[string]()
	trees, clean, repeated := 0, 0, 0

	for _, r := range records {
		tree, ok := r.(*record.Tree)
		if !ok {
			continue
		}
		trees++

		unique := true
		for _, sub := range subs {
			groups, err := DetectNested(tree, sub, acc)
			if err != nil {
				return nil, err
			}
			for _, g := range groups {
				perElement.AddN(sub, len(g)-1)
				repeated += len(g) - 1
			}
			if len(groups) > 0 {
				unique = false
				res.Groups[tree.ID()] = append(res.Groups[tree.ID()], groups...)
			}
		}
		if unique {
			clean++
		}
	}

	res.Metrics = []metaqa.MetricResult{
		{Scope: scope, Criterion: metaqa.CriterionUniqueness, Metric: "nested uniqueness rate", Content: stats.RateOf(clean, trees)},
		{Scope: scope, Criterion: metaqa.CriterionUniqueness, Metric: "duplicate sub-records", Content: metaqa.Count(repeated)},
		{Scope: scope, Criterion: metaqa.CriterionUniqueness, Metric: "duplicate sub-records by element", Content: metaqa.Breakdown(perElement.Map())},
	}
	return res, nil
}
