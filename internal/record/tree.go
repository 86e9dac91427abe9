package record

import (
	"strconv"
	"strings"

	"github.com/vvka-141/metaqa/pkg/metaqa"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// EscapePointer escapes a JSON pointer reference token.
func EscapePointer(token string) string {
	return pointerEscaper.Replace(token)
}

type treeField struct {
	name   string
	values []Value
	list   bool
}

// Tree is a tree-shaped record instance.
// Trees are built once by a reader and must not be modified afterwards.
type Tree struct {
	file string
	base string

	fields     []*treeField
	fieldIndex map[string]int

	childNames []string
	children   map[string][]*Tree
}

// NewTree creates an empty root instance for a file.
func NewTree(file string) *Tree {
	return NewTreeAt(file, "")
}

// NewTreeAt creates an empty instance located at pointer inside file,
// for files holding a list of instances.
func NewTreeAt(file, pointer string) *Tree {
	return &Tree{
		file:       file,
		base:       pointer,
		fieldIndex: make(map[string]int),
		children:   make(map[string][]*Tree),
	}
}

// ID returns the file identifier, suffixed with "#pointer" for instances
// that are not the document root.
func (t *Tree) ID() string {
	if t.base == "" {
		return t.file
	}
	return t.file + "#" + t.base
}

// Locator implements Record.
func (t *Tree) Locator() metaqa.Locator {
	return metaqa.TreeLocator(t.file)
}

// Pointer returns the JSON pointer of this instance inside its file.
func (t *Tree) Pointer() string {
	return t.base
}

// Set assigns a single-valued field, replacing any previous value.
func (t *Tree) Set(name string, v Value) *Tree {
	f := t.field(name)
	f.values = []Value{v}
	f.list = false
	return t
}

// Append adds v to the scalar list name.
func (t *Tree) Append(name string, v Value) *Tree {
	f := t.field(name)
	f.values = append(f.values, v)
	f.list = true
	return t
}

func (t *Tree) field(name string) *treeField {
	if i, ok := t.fieldIndex[name]; ok {
		return t.fields[i]
	}
	t.fieldIndex[name] = len(t.fields)
	f := &treeField{name: name}
	t.fields = append(t.fields, f)
	return f
}

// Get returns the value of a single-valued field, or the first item of a list.
func (t *Tree) Get(name string) (Value, bool) {
	i, ok := t.fieldIndex[name]
	if !ok || len(t.fields[i].values) == 0 {
		return Null(), false
	}
	return t.fields[i].values[0], true
}

// AddChild appends a new sub-element to the repeatable list name and returns it.
func (t *Tree) AddChild(name string) *Tree {
	if _, ok := t.children[name]; !ok {
		t.childNames = append(t.childNames, name)
	}
	pointer := t.base + "/" + EscapePointer(name) + "/" + strconv.Itoa(len(t.children[name]))
	child := NewTreeAt(t.file, pointer)
	t.children[name] = append(t.children[name], child)
	return child
}

// Group returns the single nested object name, creating it on first use.
// Unlike AddChild, its pointer carries no list index.
func (t *Tree) Group(name string) *Tree {
	if existing := t.children[name]; len(existing) > 0 {
		return existing[0]
	}
	t.childNames = append(t.childNames, name)
	child := NewTreeAt(t.file, t.base+"/"+EscapePointer(name))
	t.children[name] = []*Tree{child}
	return child
}

// Children returns the sub-elements of the list name in source order.
func (t *Tree) Children(name string) []*Tree {
	return t.children[name]
}

// ChildNames returns the names of the sub-element lists in first-seen order.
func (t *Tree) ChildNames() []string {
	return append([]string(nil), t.childNames...)
}

// Entries implements Record. Own fields come first, then each
// sub-element list in first-seen order.
func (t *Tree) Entries() []Entry {
	var out []Entry
	t.collect("", &out)
	return out
}

func (t *Tree) collect(prefix string, out *[]Entry) {
	for _, f := range t.fields {
		pointer := t.base + "/" + EscapePointer(f.name)
		if !f.list {
			*out = append(*out, Entry{Name: prefix + f.name, Pointer: pointer, Value: f.values[0]})
			continue
		}
		for i, v := range f.values {
			*out = append(*out, Entry{Name: prefix + f.name, Pointer: pointer + "/" + strconv.Itoa(i), Value: v})
		}
	}
	for _, name := range t.childNames {
		for _, c := range t.children[name] {
			c.collect(prefix+name+"/", out)
		}
	}
}
