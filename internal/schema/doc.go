// Package schema describes which fields a kind of metadata record should carry
// and how important each one is.
//
// # Schema Format
//
// Schemas are YAML trees. Leaves carry a requirement tier, containers carry
// child fields and may be repeatable:
//
//	kind: study
//	version: "1.0"
//	fields:
//	  - name: accession
//	    tier: required
//	  - name: contributors
//	    repeatable: true
//	    fields:
//	      - name: name
//	        tier: required
//
// # Paths
//
// A field's path joins the names from the root with "/", e.g. "contributors/name".
// The Navigator resolves paths depth-first: a container's own fields are visited
// before descending into its child containers.
//
// # Classification
//
// Record field names rarely match schema paths exactly ("Study Title?" vs "title").
// A Classifier normalizes both sides once per schema and answers lookups from
// that index; it must be built once and shared across all records of a run.
//
// # Providers
//
// Builtin schemas for study, datafile and variable records are embedded in the
// binary. A DirProvider loads "<kind>.yaml" files from a directory and falls back
// to the builtin set.
package schema
