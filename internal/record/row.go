package record

import (
	"strconv"

	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Row is a flat record: a fixed header set mapped to scalar cells.
type Row struct {
	source string
	number int
	names  []string
	values []Value
}

// NewRow builds a row from a header and its cells. Cells beyond the header are
// dropped, and headers without a cell hold null.
func NewRow(source string, number int, names, cells []string) *Row {
	r := &Row{
		source: source,
		number: number,
		names:  append([]string(nil), names...),
		values: make([]Value, len(names)),
	}
	for i := range names {
		if i < len(cells) {
			r.values[i] = Scalar(cells[i])
		}
	}
	return r
}

// ID returns "source#row".
func (r *Row) ID() string {
	return r.source + "#" + strconv.Itoa(r.number)
}

// Locator implements Record.
func (r *Row) Locator() metaqa.Locator {
	return metaqa.RowLocator(r.source, r.number)
}

// Number returns the 1-based data row number.
func (r *Row) Number() int {
	return r.number
}

// Entries implements Record. Name and pointer are both the column header.
func (r *Row) Entries() []Entry {
	out := make([]Entry, len(r.names))
	for i, n := range r.names {
		out[i] = Entry{Name: n, Pointer: n, Value: r.values[i]}
	}
	return out
}

// Get returns the cell under header name.
func (r *Row) Get(name string) (Value, bool) {
	for i, n := range r.names {
		if sameName(n, name) {
			return r.values[i], true
		}
	}
	return Null(), false
}
