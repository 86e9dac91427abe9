// Package stats merges histograms across records and files and derives rates.
// Every rate follows the same rule: an empty denominator yields an undefined
// rate, never 0% or 100%.
package stats
