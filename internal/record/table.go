package record

import (
	"sort"
	"strings"
)

// Accessor reads one named field of a record by its schema path.
type Accessor struct {
	Name string
	Path string
}

// Get returns the first value found at the accessor's path.
// Absent fields yield null and false.
func (a Accessor) Get(r Record) (Value, bool) {
	e, ok := Find(r, a.Path)
	if !ok {
		return Null(), false
	}
	return e.Value, true
}

// Values returns every value at the accessor's path.
func (a Accessor) Values(r Record) []Value {
	entries := FindAll(r, a.Path)
	out := make([]Value, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}

// Pair names a claimed field of a child record and the canonical parent
// field it must agree with.
type Pair struct {
	Name    string
	Child   string
	Parent  string
	Compare string
}

// Table is the static field table of one record kind: its accessors,
// default identity fields and default cross-entity pairs.
type Table struct {
	Kind      string
	Accessors []Accessor

	// Identity lists the accessor names whose equality defines a duplicate.
	Identity []string

	// Parents is the kind a child record of this kind cites, if any.
	// ParentKey is the child path holding the cited parent key, and
	// ParentKeyPath the parent path it is matched against.
	Parents       string
	ParentKey     string
	ParentKeyPath string
	Pairs         []Pair

	// Nested lists repeatable sub-elements checked for duplicate entries.
	Nested []string
}

// Accessor returns the accessor registered under name.
func (t Table) Accessor(name string) (Accessor, bool) {
	for _, a := range t.Accessors {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Accessor{}, false
}

var tables = map[string]Table{
	"study": {
		Kind: "study",
		Accessors: []Accessor{
			{Name: "accession", Path: "accession"},
			{Name: "title", Path: "title"},
			{Name: "award_id", Path: "award_id"},
			{Name: "funder", Path: "funder"},
			{Name: "contributor", Path: "contributors/name"},
			{Name: "doi", Path: "publications/doi"},
		},
		Identity: []string{"accession"},
		Nested:   []string{"contributors", "publications"},
	},
	"datafile": {
		Kind: "datafile",
		Accessors: []Accessor{
			{Name: "file_name", Path: "file_name"},
			{Name: "version", Path: "version"},
			{Name: "format", Path: "format"},
			{Name: "checksum", Path: "checksum"},
			{Name: "parent_accession", Path: "citation/accession"},
			{Name: "parent_title", Path: "citation/title"},
			{Name: "parent_award_id", Path: "citation/award_id"},
			{Name: "parent_creator", Path: "citation/creator"},
		},
		Identity:      []string{"file_name", "version"},
		Parents:       "study",
		ParentKey:     "citation/accession",
		ParentKeyPath: "accession",
		Pairs: []Pair{
			{Name: "title", Child: "citation/title", Parent: "title", Compare: "exact"},
			{Name: "award_id", Child: "citation/award_id", Parent: "award_id", Compare: "exact"},
			{Name: "creator", Child: "citation/creator", Parent: "contributors/name", Compare: "name"},
		},
	},
	"variable": {
		Kind: "variable",
		Accessors: []Accessor{
			{Name: "name", Path: "name"},
			{Name: "label", Path: "label"},
			{Name: "type", Path: "type"},
			{Name: "source_file", Path: "source_file"},
		},
		Identity: []string{"name"},
	},
}

// TableFor returns the static table of kind.
func TableFor(kind string) (Table, bool) {
	t, ok := tables[strings.ToLower(strings.TrimSpace(kind))]
	return t, ok
}

// Kinds lists the kinds with a static table, sorted.
func Kinds() []string {
	out := make([]string, 0, len(tables))
	for k := range tables {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
