package accuracy

import (
	"fmt"
	"strings"
	"unicode"
)

// Comparator reports whether a claimed value agrees with the canonical one.
type Comparator func(claimed, canonical string) bool

// Exact compares byte for byte, without normalization.
func Exact(claimed, canonical string) bool {
	return claimed == canonical
}

// PersonName compares person names independently of "Last, First" versus
// "First Last" ordering, letter case, periods and repeated spaces.
func PersonName(claimed, canonical string) bool {
	a, b := nameTokens(claimed), nameTokens(canonical)
	if len(a) == 0 || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// nameTokens returns the lower-cased name parts in "first ... last" order.
func nameTokens(name string) []string {
	if last, first, ok := strings.Cut(name, ","); ok {
		name = first + " " + last
	}
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return unicode.IsSpace(r) || r == '.' || r == ','
	})
}

// ComparatorByName resolves a configured comparator name.
// The empty name selects Exact.
func ComparatorByName(name string) (Comparator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "exact":
		return Exact, nil
	case "name", "person-name":
		return PersonName, nil
	}
	return nil, fmt.Errorf("unknown comparator %q (want exact or name)", name)
}
