// Package duplicate partitions record sets into groups of duplicates.
//
// Top-level records are duplicates when their identity fields match exactly,
// not when every field does. Sub-records nested in one parent (repeatable
// contributor entries, for instance) are duplicates when every filled leaf
// matches.
//
// Both levels use the same visited-set partition, which performs O(N^2)
// equality tests. Identity relations over partial field sets are not
// guaranteed to be transitive, so a hash-based grouping could disagree with it.
package duplicate
