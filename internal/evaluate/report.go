package evaluate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/metaqa/internal/checksum"
	"github.com/vvka-141/metaqa/internal/stats"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// NamespaceRun is the UUID v5 namespace for run identities,
// derived from "metaqa/run/v1" under the URL namespace.
var NamespaceRun = uuid.NewSHA1(uuid.NameSpaceURL, []byte("metaqa/run/v1"))

// SourceReport describes one evaluated source.
type SourceReport struct {
	Path    string                 `json:"path"`
	Kind    string                 `json:"kind"`
	Files   []checksum.Fingerprint `json:"files"`
	Records int                    `json:"records"`
	Invalid int                    `json:"invalid_records"`
	Metrics []metaqa.MetricResult  `json:"metrics"`
}

// Report is the final result of a run.
type Report struct {
	// RunID is derived from the normalized checksums of every input file,
	// so the same inputs always yield the same ID.
	RunID    uuid.UUID             `json:"run_id"`
	Sources  []SourceReport        `json:"sources"`
	Metrics  []metaqa.MetricResult `json:"metrics"`
	Findings []metaqa.Finding      `json:"findings"`
	Summary  stats.Summary         `json:"summary"`
}

// AllMetrics returns the per-source metrics followed by the run metrics.
func (r *Report) AllMetrics() []metaqa.MetricResult {
	var out []metaqa.MetricResult
	for _, s := range r.Sources {
		out = append(out, s.Metrics...)
	}
	return append(out, r.Metrics...)
}

// Gate returns an error wrapping metaqa.ErrQualityGate when any finding is
// at or above level.
func (r *Report) Gate(level metaqa.IssueLevel) error {
	n := 0
	for _, f := range r.Findings {
		if f.Level >= level {
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return fmt.Errorf("%d finding(s) at level %s or above: %w", n, level, metaqa.ErrQualityGate)
}

func runID(sources []SourceReport) uuid.UUID {
	var sums []string
	for _, s := range sources {
		for _, f := range s.Files {
			sums = append(sums, f.Path+"="+f.Normalized)
		}
	}
	sort.Strings(sums)
	return uuid.NewSHA1(NamespaceRun, []byte(strings.Join(sums, "\n")))
}
