// Package completeness measures how many governed fields each record fills.
//
// Tallies are schema-driven: ComputeTally iterates the schema's leaves, not
// the record's fields, so records with different field sets produce comparable
// totals. A leaf absent from a record counts toward the total but not toward
// filled. A leaf under a repeatable container counts once per record and is
// filled when any instance fills it. Fields the schema does not govern are
// ignored.
//
// A Distribution folds tallies into "fields filled" -> "records" histograms,
// one per tier plus an overall one, and stays a total partition of the folded
// records for every tier.
package completeness
