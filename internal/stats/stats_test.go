package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/metaqa/pkg/metaqa"
)

func TestHistogram(t *testing.T) {
	h := NewHistogram[int]()
	h.Add(2)
	h.Add(2)
	h.AddN(0, 0)
	h.AddN(5, 3)

	assert.Equal(t, []int{0, 2, 5}, h.Keys())
	assert.Equal(t, 5, h.Total())
	assert.Equal(t, 2, h.Get(2))
	assert.Equal(t, 0, h.Get(7))
	assert.Equal(t, map[int]int{0: 0, 2: 2, 5: 3}, h.Map())
}

func TestMergeAll_KeyWiseSum(t *testing.T) {
	a := NewHistogram[string]()
	a.Add("x")
	a.AddN("y", 2)
	b := NewHistogram[string]()
	b.AddN("y", 3)
	b.Add("z")

	merged := MergeAll(a, b, nil)

	assert.Equal(t, map[string]int{"x": 1, "y": 5, "z": 1}, merged.Map())
	assert.Equal(t, a.Total()+b.Total(), merged.Total())
	assert.Equal(t, 3, a.Total(), "inputs are untouched")
}

func TestRateOf(t *testing.T) {
	tests := []struct {
		name     string
		num, den int
		want     metaqa.Rate
	}{
		{"third", 1, 3, metaqa.Percent(33.33)},
		{"two thirds", 2, 3, metaqa.Percent(66.67)},
		{"full", 4, 4, metaqa.Percent(100)},
		{"zero numerator", 0, 4, metaqa.Percent(0)},
		{"empty denominator", 0, 0, metaqa.UndefinedRate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RateOf(tt.num, tt.den)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestSummarize(t *testing.T) {
	fs := []metaqa.Finding{
		{IssueType: metaqa.IssueMissingRequired, Level: metaqa.LevelError},
		{IssueType: metaqa.IssueMissingRequired, Level: metaqa.LevelError},
		{IssueType: metaqa.IssueMissingRecommended, Level: metaqa.LevelWarning},
	}

	s := Summarize(fs, 1, 4)

	assert.Equal(t, 3, s.Findings)
	assert.Equal(t, metaqa.Breakdown{"missing required field": 2, "missing recommended field": 1}, s.ByIssueType)
	assert.Equal(t, metaqa.Breakdown{"error": 2, "warning": 1}, s.ByLevel)
	assert.Equal(t, "75.00%", s.PassRate.String())
	assert.Len(t, s.Metrics("run"), 5)

	empty := Summarize(nil, 0, 0)
	assert.False(t, empty.PassRate.Defined())
}
