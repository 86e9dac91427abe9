package record

import "strings"

// Kind distinguishes the three value shapes.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindObject
)

// Object is an object-valued field such as a controlled-vocabulary term:
// an identifier, a human-readable label and a free-text literal.
type Object struct {
	Identifier string `json:"identifier,omitempty"`
	Label      string `json:"label,omitempty"`
	Literal    string `json:"literal,omitempty"`
}

// Value is a single field value. The zero value is null.
type Value struct {
	kind   Kind
	scalar string
	object Object
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Scalar returns a text value.
func Scalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// ObjectValue returns an object value.
func ObjectValue(o Object) Value {
	return Value{kind: KindObject, object: o}
}

// Kind returns the value's shape.
func (v Value) Kind() Kind {
	return v.kind
}

// Object returns the object payload when the value is an object.
func (v Value) Object() (Object, bool) {
	return v.object, v.kind == KindObject
}

// Filled reports whether the value carries content.
// A scalar is filled when it is non-empty after trimming whitespace;
// an object when at least one of its parts is.
func (v Value) Filled() bool {
	switch v.kind {
	case KindScalar:
		return strings.TrimSpace(v.scalar) != ""
	case KindObject:
		return strings.TrimSpace(v.object.Identifier) != "" ||
			strings.TrimSpace(v.object.Label) != "" ||
			strings.TrimSpace(v.object.Literal) != ""
	default:
		return false
	}
}

// Text returns the value used for comparisons and reports: the scalar text,
// or the first non-empty of an object's identifier, label and literal.
// Null yields "".
func (v Value) Text() string {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindObject:
		for _, s := range []string{v.object.Identifier, v.object.Label, v.object.Literal} {
			if strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}

// Equal reports exact equality. Two unfilled values are equal regardless
// of their shape.
func (v Value) Equal(o Value) bool {
	if !v.Filled() && !o.Filled() {
		return true
	}
	return v.kind == o.kind && v.scalar == o.scalar && v.object == o.object
}

// String renders the value for logs.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "<null>"
	case KindObject:
		return "{" + v.object.Identifier + "|" + v.object.Label + "|" + v.object.Literal + "}"
	default:
		return v.scalar
	}
}
