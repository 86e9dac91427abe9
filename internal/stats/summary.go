package stats

import "github.com/vvka-141/metaqa/pkg/metaqa"

// Summary condenses a finding stream for reporting.
type Summary struct {
	Findings    int              `json:"findings"`
	ByIssueType metaqa.Breakdown `json:"by_issue_type"`
	ByLevel     metaqa.Breakdown `json:"by_level"`

	// Records is the number of evaluated records, InvalidRecords those
	// with at least one blocking finding.
	Records        int         `json:"records"`
	InvalidRecords int         `json:"invalid_records"`
	PassRate       metaqa.Rate `json:"pass_rate"`
}

// Summarize counts findings per issue type and level and derives the pass
// rate, the share of the total records that were never marked invalid.
func Summarize(findings []metaqa.Finding, invalid, total int) Summary {
	byType := NewHistogram[string]()
	byLevel := NewHistogram[string]()
	for _, f := range findings {
		byType.Add(string(f.IssueType))
		byLevel.Add(f.Level.String())
	}

	return Summary{
		Findings:       len(findings),
		ByIssueType:    metaqa.Breakdown(byType.Map()),
		ByLevel:        metaqa.Breakdown(byLevel.Map()),
		Records:        total,
		InvalidRecords: invalid,
		PassRate:       RateOf(total-invalid, total),
	}
}

// Metrics renders the summary as validity metrics for scope.
func (s Summary) Metrics(scope string) []metaqa.MetricResult {
	return []metaqa.MetricResult{
		{Scope: scope, Criterion: metaqa.CriterionValidity, Metric: "findings", Content: metaqa.Count(s.Findings)},
		{Scope: scope, Criterion: metaqa.CriterionValidity, Metric: "findings by issue type", Content: s.ByIssueType},
		{Scope: scope, Criterion: metaqa.CriterionValidity, Metric: "findings by level", Content: s.ByLevel},
		{Scope: scope, Criterion: metaqa.CriterionValidity, Metric: "invalid records", Content: metaqa.Count(s.InvalidRecords)},
		{Scope: scope, Criterion: metaqa.CriterionValidity, Metric: "pass rate", Content: s.PassRate},
	}
}
