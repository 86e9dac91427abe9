package completeness

import (
	"fmt"

	"github.com/vvka-141/metaqa/internal/findings"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/internal/schema"
	"github.com/vvka-141/metaqa/internal/stats"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Result is the outcome of evaluating one record set.
type Result struct {
	Tallies      []Tally
	Distribution *Distribution
	Metrics      []metaqa.MetricResult
}

// Evaluate tallies every record against the classifier's schema, folds the
// tallies into a distribution and emits completeness metrics under scope.
//
// Unfilled required leaves produce an error finding and mark the record
// invalid; unfilled recommended leaves produce a warning.
// An empty record set yields undefined rates and empty distributions.
func Evaluate(scope string, records []record.Record, c *schema.Classifier, acc *findings.Accumulator) (*Result, error) {
	res := &Result{
		Tallies:      make([]Tally, 0, len(records)),
		Distribution: NewDistribution(c.Tiers()),
	}

	var filled, total, passed int
	tierFilled := make(map[metaqa.Tier]int)
	tierTotal := make(map[metaqa.Tier]int)

	for _, rec := range records {
		t := ComputeTally(rec, c)
		if err := res.Distribution.Fold(t); err != nil {
			return nil, fmt.Errorf("completeness of %s: %w", scope, err)
		}
		res.Tallies = append(res.Tallies, t)

		filled += t.Overall.Filled
		total += t.Overall.Total
		for tier, counts := range t.ByTier {
			tierFilled[tier] += counts.Filled
			tierTotal[tier] += counts.Total
		}
		if req := t.ByTier[metaqa.TierRequired]; req.Filled == req.Total {
			passed++
		}

		report(rec, t, acc)
	}

	if err := res.Distribution.Check(); err != nil {
		return nil, fmt.Errorf("completeness of %s: %w", scope, err)
	}

	res.Metrics = append(res.Metrics, metaqa.MetricResult{
		Scope: scope, Criterion: metaqa.CriterionCompleteness,
		Metric: "records", Content: metaqa.Count(len(records)),
	}, metaqa.MetricResult{
		Scope: scope, Criterion: metaqa.CriterionCompleteness,
		Metric: "overall fill rate", Content: stats.RateOf(filled, total),
	})
	for _, tier := range res.Distribution.Tiers() {
		res.Metrics = append(res.Metrics, metaqa.MetricResult{
			Scope: scope, Criterion: metaqa.CriterionCompleteness,
			Metric: tier.String() + " fill rate", Content: stats.RateOf(tierFilled[tier], tierTotal[tier]),
		})
	}
	res.Metrics = append(res.Metrics, res.Distribution.Metrics(scope)...)
	res.Metrics = append(res.Metrics, metaqa.MetricResult{
		Scope: scope, Criterion: metaqa.CriterionCompleteness,
		Metric: "required pass rate", Content: stats.RateOf(passed, len(records)),
	})

	return res, nil
}

func report(rec record.Record, t Tally, acc *findings.Accumulator) {
	for _, m := range t.Unfilled {
		var (
			issue metaqa.IssueType
			level metaqa.IssueLevel
		)
		switch m.Leaf.Tier {
		case metaqa.TierRequired:
			issue, level = metaqa.IssueMissingRequired, metaqa.LevelError
		case metaqa.TierRecommended:
			issue, level = metaqa.IssueMissingRecommended, metaqa.LevelWarning
		default:
			continue
		}

		acc.Add(findings.New(rec.Locator(), rec.ID(), m.Pointer, issue, level,
			fmt.Sprintf("%s field %q is not filled", m.Leaf.Tier, m.Leaf.Path)))
		if level == metaqa.LevelError {
			acc.MarkInvalid(rec.ID())
		}
	}
}
