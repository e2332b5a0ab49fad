// Package inci estimates ingredient concentrations from INCI label order and
// validates them against jurisdictional regulatory ceilings.
//
// INCI labeling convention lists ingredients in descending concentration
// order. Estimate exploits that ordering: each rank position maps to a fixed
// concentration tier, every value is clamped to the ingredient's known
// regulatory ceiling, and — if the running total overshoots 100% — the whole
// vector is rescaled to a fixed headroom total, leaving margin for unlisted
// trace ingredients.
//
// Contracts:
//
//   - Estimate is deterministic and idempotent: identical input produces an
//     identical output slice, with no side effects.
//   - Validate is a pure function: same list + same jurisdiction ⇒ same
//     (compliant, violations) result, call after call.
//   - After Estimate, all percentages are ≥ 0 and their total is ≤ 100.
//
// Errors (sentinel):
//
//	– ErrEmptyList       if the ordered ingredient list is empty.
//	– ErrBlankIngredient if any identifier is empty after trimming.
//	– ErrBadBatchSize    if EstimateAbsolute receives a non-positive mass.
//
// Complexity: O(n) per call over the list length; O(1) table lookups.
package inci
