package completeness

import (
	"fmt"

	"github.com/vvka-141/metaqa/internal/stats"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Distribution maps "fields filled" to "records", per tier and overall.
// It only grows: through Fold and Merge.
type Distribution struct {
	tiers   []metaqa.Tier
	byTier  map[metaqa.Tier]*stats.Histogram[int]
	overall *stats.Histogram[int]
	records int
}

// NewDistribution creates an empty distribution over tiers, which should be
// the tiers present in the schema.
func NewDistribution(tiers []metaqa.Tier) *Distribution {
	d := &Distribution{
		byTier:  make(map[metaqa.Tier]*stats.Histogram[int], len(tiers)),
		overall: stats.NewHistogram[int](),
	}
	for _, tier := range tiers {
		d.addTier(tier)
	}
	return d
}

func (d *Distribution) addTier(tier metaqa.Tier) {
	if _, ok := d.byTier[tier]; ok {
		return
	}
	d.byTier[tier] = stats.NewHistogram[int]()

	var ordered []metaqa.Tier
	for _, t := range metaqa.Tiers {
		if _, ok := d.byTier[t]; ok {
			ordered = append(ordered, t)
		}
	}
	d.tiers = ordered
}

// Fold adds one record's tally. Every tier of the distribution gets a
// bucket, including a 0 bucket for tiers the record fills nothing of.
func (d *Distribution) Fold(t Tally) error {
	if err := t.Check(); err != nil {
		return err
	}
	for _, tier := range d.tiers {
		d.byTier[tier].Add(t.ByTier[tier].Filled)
	}
	d.overall.Add(t.Overall.Filled)
	d.records++
	return nil
}

// Merge adds other's buckets key by key.
func (d *Distribution) Merge(other *Distribution) {
	if other == nil {
		return
	}
	for _, tier := range other.tiers {
		d.addTier(tier)
		d.byTier[tier].Merge(other.byTier[tier])
	}
	d.overall.Merge(other.overall)
	d.records += other.records
}

// Check verifies that every histogram sums to the number of folded records.
func (d *Distribution) Check() error {
	for _, tier := range d.tiers {
		if got := d.byTier[tier].Total(); got != d.records {
			return fmt.Errorf("%s distribution covers %d of %d records: %w", tier, got, d.records, metaqa.ErrInvariantViolation)
		}
	}
	if got := d.overall.Total(); got != d.records {
		return fmt.Errorf("overall distribution covers %d of %d records: %w", got, d.records, metaqa.ErrInvariantViolation)
	}
	return nil
}

// Tiers returns the tiers tracked, in reporting order.
func (d *Distribution) Tiers() []metaqa.Tier {
	return append([]metaqa.Tier(nil), d.tiers...)
}

// Records returns the number of folded records.
func (d *Distribution) Records() int {
	return d.records
}

// Tier returns the histogram of one tier as metric content.
func (d *Distribution) Tier(tier metaqa.Tier) metaqa.Distribution {
	h, ok := d.byTier[tier]
	if !ok {
		return metaqa.Distribution{}
	}
	return metaqa.Distribution(h.Map())
}

// Overall returns the overall histogram as metric content.
func (d *Distribution) Overall() metaqa.Distribution {
	return metaqa.Distribution(d.overall.Map())
}

// Metrics renders the distribution as completeness metrics for scope.
func (d *Distribution) Metrics(scope string) []metaqa.MetricResult {
	out := make([]metaqa.MetricResult, 0, len(d.tiers)+1)
	for _, tier := range d.tiers {
		out = append(out, metaqa.MetricResult{
			Scope:     scope,
			Criterion: metaqa.CriterionCompleteness,
			Metric:    tier.String() + " fields filled",
			Content:   d.Tier(tier),
		})
	}
	out = append(out, metaqa.MetricResult{
		Scope:     scope,
		Criterion: metaqa.CriterionCompleteness,
		Metric:    "overall fields filled",
		Content:   d.Overall(),
	})
	return out
}
