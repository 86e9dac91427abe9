// Package reader turns input files into records.
//
// Rows reads CSV and TSV files: the first line is the header and every
// following line becomes a record.Row numbered from 1. Trees reads JSON and
// YAML documents into record.Tree values. A document holding a single object
// becomes one tree, and a document holding a list becomes one tree per item.
// Both readers preserve the key order of their input.
//
// Inside trees, a mapping whose keys are only identifier, label and literal
// is read as an object value. Any other mapping becomes a nested group. A list
// of mappings becomes repeatable sub-elements, and a list of scalars becomes a
// scalar list.
package reader
