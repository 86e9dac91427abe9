// Package findings collects quality findings produced during a run.
//
// An Accumulator is passed explicitly to every evaluator. It records
// findings in insertion order together with the set of record IDs that
// received at least one blocking finding. It is not safe for concurrent
// mutation: parallel runs give every task its own Accumulator and combine
// them with Merge, then call Sorted for a deterministic report order.
package findings
