// Package evaluate runs every configured source through the evaluators and
// assembles the run report.
//
// Each source is one task: its files are globbed, fingerprinted and read,
// then evaluated for completeness, duplicates, nested duplicates and, when
// the source cites parents, cross-entity accuracy. Tasks run concurrently,
// bounded by the configured parallelism, and each owns its own findings
// accumulator. After all tasks finish, the accumulators are merged in source
// order and the findings are sorted, so the report does not depend on
// scheduling.
package evaluate
