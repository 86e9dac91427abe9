// Package record defines the immutable metadata records the evaluators read.
//
// Two shapes are supported:
//
//   - Row: a flat spreadsheet row, a header -> scalar mapping located by
//     source file and 1-based data row number.
//   - Tree: a tree instance with named single-valued fields, named scalar
//     lists and named repeatable sub-element lists. Every sub-element is itself
//     a *Tree located inside the same file by a JSON pointer.
//
// Both expose their leaves through Entries(), a flat list of
// (Name, Pointer, Value) triples. Names use schema path syntax
// ("contributors/name"), pointers use JSON pointer syntax
// ("/contributors/0/name").
//
// Fields are accessed through Entries and the static per-kind Table,
// never through reflection.
package record
