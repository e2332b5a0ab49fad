// Package reduce prunes the formulation search space before optimization.
//
// Starting from a target ordered ingredient list, Reduce builds a base
// identifier set, then admits every other ingredient of the fixed knowledge
// table that
//
//   - is not recorded as incompatible with any base ingredient,
//   - does not appear in any constraint's incompatibility set, and
//   - does not carry a constraint minimum above its regulatory ceiling.
//
// The resulting pool seeds the evolutionary optimizer's population. Reduce
// also reports a combinatorial reduction factor — the ratio of the
// brute-force space (database size raised to the pool-size cap) to the
// filtered space. The factor is observability only: nothing in the search
// consumes it.
//
// Errors (sentinel):
//
//	– ErrEmptyTarget    if the target ordered list is empty.
//	– ErrInvertedBounds if any constraint has Min > Max.
//
// Degenerate inputs that are not malformed degrade gracefully: a constraint
// set that filters out every ingredient yields an empty pool, not an error.
//
// Complexity: O(D·B + D·C) for D database entries, B base ingredients and
// C constraints.
package reduce
