// Package evolve runs constrained, multi-objective evolutionary optimization
// of cosmetic formulations.
//
// The optimizer consumes a viable ingredient pool (usually from package
// reduce), a hard constraint set, a target effect profile and tunable run
// parameters, and produces ranked formulation candidates together with
// compliance and attention reports.
//
// Control loop (INITIALIZE → EVOLVE → TERMINAL):
//
//	INITIALIZE  random bounded concentrations per pool ingredient, rescaled
//	            to a total of exactly 100%.
//	EVOLVE      per generation: request an attention budget split for the
//	            phase-specific sub-tasks (informational bookkeeping only),
//	            evaluate every candidate against hard constraints and the
//	            multiscale effect model, track the best fitness, stop early
//	            on convergence, then reproduce via elitism, tournament
//	            selection, single-point crossover and Gaussian mutation.
//	TERMINAL    best candidate, ranked alternates, trajectory and reports.
//
// Hard constraint violations never raise: a violating candidate is
// classified with fitness 0 and Satisfied=false. An infeasible constraint
// set therefore runs to completion with best fitness 0 — callers must
// inspect the Satisfied flag.
//
// Determinism:
//
//   - Every stochastic operator (population init, tournament sampling,
//     crossover point, mutation noise) draws from one injectable, seedable
//     generator; identical seed + identical inputs ⇒ identical fitness
//     trajectory.
//   - Per-candidate evaluation may fan out across workers (Parallelism > 1):
//     each evaluation is a pure function of its own candidate, and results
//     land at the candidate's original index, so the collection order is
//     deterministic.
//
// Errors (sentinel):
//
//	– ErrEmptyPool  if the viable ingredient pool is empty.
//	– ErrBadParams  if run parameters fail validation (wraps the detail).
//
// Complexity: O(G·N·(I + C)) for G generations, N candidates, I pool
// ingredients and C constraints.
package evolve
