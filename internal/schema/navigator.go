package schema

import "github.com/vvka-141/metaqa/pkg/metaqa"

// Resolved is a schema field together with its canonical path.
type Resolved struct {
	Path  string
	Field *Field
}

// Leaf is a governed leaf field: the unit of completeness accounting.
type Leaf struct {
	Path string
	Tier metaqa.Tier

	// Repeated is true when some ancestor container is repeatable.
	Repeated bool
}

// Navigator walks a schema tree.
type Navigator struct {
	schema *Schema
}

// NewNavigator returns a navigator over s.
func NewNavigator(s *Schema) *Navigator {
	return &Navigator{schema: s}
}

// Walk visits every field depth-first. At each level the container's own
// fields are visited first, then each child container is descended into,
// with child paths built as prefix + "/" + childName.
// Returning false from fn stops the walk.
func (n *Navigator) Walk(fn func(path string, f *Field, repeated bool) bool) {
	walk(n.schema.Fields, "", false, fn)
}

func walk(fields []*Field, prefix string, repeated bool, fn func(string, *Field, bool) bool) bool {
	for _, f := range fields {
		if !fn(prefix+f.Name, f, repeated) {
			return false
		}
	}
	for _, f := range fields {
		if !f.IsContainer() {
			continue
		}
		if !walk(f.Fields, prefix+f.Name+"/", repeated || f.Repeatable, fn) {
			return false
		}
	}
	return true
}

// Resolve finds the field declared at path.
// A miss means the field is not governed by the schema; it is not an error.
func (n *Navigator) Resolve(path string) (Resolved, bool) {
	var found Resolved
	ok := false
	n.Walk(func(p string, f *Field, _ bool) bool {
		if p == path {
			found = Resolved{Path: p, Field: f}
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Leaves returns every governed leaf in walk order.
func (n *Navigator) Leaves() []Leaf {
	var leaves []Leaf
	n.Walk(func(p string, f *Field, repeated bool) bool {
		if !f.IsContainer() {
			leaves = append(leaves, Leaf{Path: p, Tier: f.Tier, Repeated: repeated})
		}
		return true
	})
	return leaves
}

// Containers returns the paths of repeatable containers in walk order.
func (n *Navigator) Containers() []string {
	var paths []string
	n.Walk(func(p string, f *Field, _ bool) bool {
		if f.IsContainer() && f.Repeatable {
			paths = append(paths, p)
		}
		return true
	})
	return paths
}
