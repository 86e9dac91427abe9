package record

// Canonicalizer maps a record field name to the canonical schema path it
// stands for. *schema.Classifier implements it.
type Canonicalizer interface {
	Canonical(name string) (string, bool)
}

// Matcher finds entries by canonical field path, so a flat column headed
// "Accession?" answers for "accession" the same way the completeness tally
// counts it. The zero Matcher compares names like Find.
type Matcher struct {
	names Canonicalizer
}

// NewMatcher returns a matcher resolving names through c.
func NewMatcher(c Canonicalizer) Matcher {
	return Matcher{names: c}
}

// Find returns the first entry of r that stands for path.
func (m Matcher) Find(r Record, path string) (Entry, bool) {
	if m.names == nil {
		return Find(r, path)
	}
	want := m.canonical(path)
	for _, e := range r.Entries() {
		if m.matches(e.Name, want) {
			return e, true
		}
	}
	return Entry{}, false
}

// FindAll returns every entry of r that stands for path, in source order.
func (m Matcher) FindAll(r Record, path string) []Entry {
	if m.names == nil {
		return FindAll(r, path)
	}
	want := m.canonical(path)
	var out []Entry
	for _, e := range r.Entries() {
		if m.matches(e.Name, want) {
			out = append(out, e)
		}
	}
	return out
}

func (m Matcher) canonical(path string) string {
	if p, ok := m.names.Canonical(path); ok {
		return p
	}
	return path
}

// matches compares governed names by canonical path and ungoverned names
// like Find.
func (m Matcher) matches(name, want string) bool {
	if p, ok := m.names.Canonical(name); ok {
		return p == want
	}
	return sameName(name, want)
}
