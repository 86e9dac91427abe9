package metaqa

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Tier is a field's declared importance in a schema.
// The zero value means "not governed by the schema".
type Tier int

const (
	TierRequired Tier = iota + 1
	TierRecommended
	TierOptional
)

// Tiers lists every tier in reporting order.
var Tiers = []Tier{TierRequired, TierRecommended, TierOptional}

// String returns the lower-case tier name used in schema files and reports.
func (t Tier) String() string {
	switch t {
	case TierRequired:
		return "required"
	case TierRecommended:
		return "recommended"
	case TierOptional:
		return "optional"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// IsValid returns true if the Tier is a defined value.
func (t Tier) IsValid() bool {
	return t >= TierRequired && t <= TierOptional
}

// ParseTier parses a tier name case-insensitively.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "required":
		return TierRequired, nil
	case "recommended":
		return TierRecommended, nil
	case "optional":
		return TierOptional, nil
	}
	return 0, fmt.Errorf("unknown tier %q (want required, recommended or optional)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("cannot marshal tier %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// IssueLevel is the severity of a finding.
type IssueLevel int

const (
	LevelInfo IssueLevel = iota
	LevelWarning
	LevelError
)

// String returns a human-readable severity name.
func (l IssueLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a severity name case-insensitively.
func ParseLevel(s string) (IssueLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo, nil
	case "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	}
	return 0, fmt.Errorf("unknown issue level %q (want info, warning or error)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l IssueLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *IssueLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// IssueType classifies what kind of quality problem a finding reports.
type IssueType string

const (
	IssueMissingRequired    IssueType = "missing required field"
	IssueMissingRecommended IssueType = "missing recommended field"
	IssueDuplicateRecord    IssueType = "duplicate record"
	IssueDuplicateSubRecord IssueType = "duplicate sub-record"
	IssueUnresolvableRef    IssueType = "unresolvable reference"
	IssueInaccurateValue    IssueType = "inaccurate value"
)

// Shape tells which kind of record a locator points into.
type Shape int

const (
	ShapeRow Shape = iota
	ShapeTree
)

// String returns "row" or "tree".
func (s Shape) String() string {
	if s == ShapeTree {
		return "tree"
	}
	return "row"
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Locator identifies where a record came from.
// Flat rows are located by source file and 1-based data row number,
// tree instances by file identifier alone (the field pointer carries the path).
type Locator struct {
	Shape  Shape  `json:"shape"`
	Source string `json:"source"`
	Row    int    `json:"row,omitempty"`
}

// RowLocator locates a flat row.
func RowLocator(source string, row int) Locator {
	return Locator{Shape: ShapeRow, Source: source, Row: row}
}

// TreeLocator locates a tree instance.
func TreeLocator(file string) Locator {
	return Locator{Shape: ShapeTree, Source: file}
}

// String renders "source:row" for rows and the file identifier for trees.
func (l Locator) String() string {
	if l.Shape == ShapeRow {
		return l.Source + ":" + strconv.Itoa(l.Row)
	}
	return l.Source
}

// Finding is one normalized, reportable quality issue.
// Findings are created by evaluators, appended once to an accumulator
// and never mutated afterwards.
type Finding struct {
	// ID is a deterministic identifier derived from the finding's location and type.
	ID uuid.UUID `json:"id"`

	Locator  Locator `json:"locator"`
	RecordID string  `json:"record_id"`

	// Pointer names the offending field: a column header for rows,
	// a JSON pointer ("/contributors/1/name") for trees.
	Pointer string `json:"pointer"`

	IssueType   IssueType  `json:"issue_type"`
	Level       IssueLevel `json:"level"`
	Description string     `json:"description"`

	// Original is the value found in the record, Suggested the proposed repair.
	Original  string `json:"original,omitempty"`
	Suggested string `json:"suggested,omitempty"`
}

// String returns a one-line rendering suitable for logs.
func (f Finding) String() string {
	var b strings.Builder
	b.WriteString(f.Locator.String())
	if f.Pointer != "" {
		b.WriteString(" ")
		b.WriteString(f.Pointer)
	}
	fmt.Fprintf(&b, ": [%s] %s: %s", f.Level, f.IssueType, f.Description)
	return b.String()
}
