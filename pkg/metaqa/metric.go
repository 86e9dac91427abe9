package metaqa

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Criterion is the quality dimension a metric belongs to.
type Criterion string

const (
	CriterionCompleteness Criterion = "completeness"
	CriterionUniqueness   Criterion = "uniqueness"
	CriterionAccuracy     Criterion = "accuracy"
	CriterionValidity     Criterion = "validity"
)

// Content is the payload of a MetricResult: one of Rate, Count,
// Distribution or Breakdown.
type Content interface {
	contentKind() string
}

// Rate is a percentage rounded to RateDecimals, or undefined when it was
// computed over an empty denominator. The zero value is undefined.
//
// An undefined rate is never coerced to 0% or 100%: it renders as "n/a"
// and marshals to JSON null.
type Rate struct {
	value   float64
	defined bool
}

// Percent returns a defined rate holding v rounded to RateDecimals.
func Percent(v float64) Rate {
	scale := math.Pow(10, RateDecimals)
	return Rate{value: math.Round(v*scale) / scale, defined: true}
}

// UndefinedRate returns a rate with no value.
func UndefinedRate() Rate {
	return Rate{}
}

// Value returns the percentage and whether it is defined.
func (r Rate) Value() (float64, bool) {
	return r.value, r.defined
}

// Defined reports whether the rate has a value.
func (r Rate) Defined() bool {
	return r.defined
}

// Equal reports whether two rates are both undefined or hold the same value.
func (r Rate) Equal(o Rate) bool {
	return r.defined == o.defined && r.value == o.value
}

// String renders "33.33%" or "n/a".
func (r Rate) String() string {
	if !r.defined {
		return "n/a"
	}
	return strconv.FormatFloat(r.value, 'f', RateDecimals, 64) + "%"
}

// MarshalJSON renders the numeric value or null.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.defined {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(r.value, 'f', RateDecimals, 64)), nil
}

func (Rate) contentKind() string { return "rate" }

// Count is a plain scalar count.
type Count int

func (Count) contentKind() string { return "count" }

// Distribution is a histogram keyed by an integer bucket,
// e.g. "fields filled" -> "records".
type Distribution map[int]int

func (Distribution) contentKind() string { return "distribution" }

// Breakdown is a histogram keyed by a label, e.g. issue type -> findings.
type Breakdown map[string]int

func (Breakdown) contentKind() string { return "breakdown" }

// MetricResult is one emitted quality measurement.
// Evaluators emit each result once and never mutate it afterwards.
type MetricResult struct {
	// Scope names what was measured, usually the source path or record kind.
	Scope     string    `json:"scope"`
	Criterion Criterion `json:"criterion"`
	Metric    string    `json:"metric"`
	Content   Content   `json:"-"`
}

// Kind returns "rate", "count", "distribution" or "breakdown".
func (m MetricResult) Kind() string {
	if m.Content == nil {
		return ""
	}
	return m.Content.contentKind()
}

// String returns a compact rendering for logs.
func (m MetricResult) String() string {
	return fmt.Sprintf("%s/%s/%s=%v", m.Scope, m.Criterion, m.Metric, m.Content)
}

// MarshalJSON adds the content under its kind name, so a rate metric
// renders {"kind":"rate","rate":12.5} and an undefined rate {"kind":"rate","rate":null}.
func (m MetricResult) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"scope":     m.Scope,
		"criterion": m.Criterion,
		"metric":    m.Metric,
	}
	if m.Content != nil {
		kind := m.Content.contentKind()
		out["kind"] = kind
		out[kind] = m.Content
	}
	return json.Marshal(out)
}
