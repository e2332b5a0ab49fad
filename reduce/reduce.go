package reduce

import (
	"math"

	"github.com/ReZonArc/ocskn/inci"
	"github.com/ReZonArc/ocskn/ingredient"
)

// Reduce filters the fixed ingredient table down to a candidate pool for the
// given target list and constraint set.
//
// The base set is the target list itself (canonicalized, order preserved).
// Every other known ingredient joins the pool unless it is incompatible with
// a base ingredient, named in a constraint's incompatibility set, or carries
// a constraint minimum above its regulatory ceiling. The pool is finally
// capped at opts.MaxIngredients, base set first.
//
// Contracts:
//   - Deterministic: additions are scanned in sorted table order.
//   - The reduction factor is computed for reporting only.
//
// Errors: ErrEmptyTarget, ErrInvertedBounds, plus estimator sentinels.
//
// Complexity: O(D·B + D·C) time, O(D) space.
func Reduce(target []string, constraints []Constraint, opt ...Option) (Result, error) {
	if len(target) == 0 {
		return Result{}, ErrEmptyTarget
	}
	for _, c := range constraints {
		if err := c.Validate(); err != nil {
			return Result{}, err
		}
	}

	opts := DefaultOptions()
	for _, o := range opt {
		o(&opts)
	}

	estimated, err := inci.Estimate(target, inci.WithJurisdiction(opts.Jurisdiction))
	if err != nil {
		return Result{}, err
	}

	// Base identifier set, input order preserved, duplicates dropped.
	base := make([]string, 0, len(estimated))
	seen := make(map[string]bool, len(estimated))
	for _, e := range estimated {
		if !seen[e.Name] {
			seen[e.Name] = true
			base = append(base, e.Name)
		}
	}

	// Admit every known ingredient compatible with the whole base set.
	candidates := append([]string(nil), base...)
	for _, name := range ingredient.Names() {
		if seen[name] {
			continue
		}
		if compatibleWithAll(name, base) {
			candidates = append(candidates, name)
		}
	}

	// Apply constraint-level filters.
	viable := make([]string, 0, len(candidates))
	for _, name := range candidates {
		if meetsConstraints(name, constraints, opts.Jurisdiction) {
			viable = append(viable, name)
		}
	}

	// Cap the pool, base set first.
	if len(viable) > opts.MaxIngredients {
		viable = viable[:opts.MaxIngredients]
	}

	result := Result{
		TargetIngredients: estimated,
		ViableIngredients: viable,
	}
	result.OriginalSpace = math.Pow(float64(ingredient.DatabaseSize()), float64(opts.MaxIngredients))
	exponent := opts.MaxIngredients
	if len(viable) < exponent {
		exponent = len(viable)
	}
	result.ReducedSpace = math.Pow(float64(len(viable)), float64(exponent))
	result.ReductionFactor = result.OriginalSpace / math.Max(result.ReducedSpace, 1)

	return result, nil
}

// compatibleWithAll reports whether name has no recorded incompatibility with
// any base ingredient.
func compatibleWithAll(name string, base []string) bool {
	for _, b := range base {
		if ingredient.Incompatible(name, b) {
			return false
		}
	}
	return true
}

// meetsConstraints applies per-constraint exclusions to one candidate:
// membership in an incompatibility set removes it outright; a constraint
// minimum above the ingredient's regulatory ceiling makes it unformulatable.
func meetsConstraints(name string, constraints []Constraint, j ingredient.Jurisdiction) bool {
	for _, c := range constraints {
		if ingredient.Canonical(c.Ingredient) == name {
			ceiling, ok := ingredient.CeilingFor(name, j)
			if ok && c.Min > ceiling {
				return false
			}
		}
		for _, incompatible := range c.IncompatibleWith {
			if ingredient.Canonical(incompatible) == name {
				return false
			}
		}
	}
	return true
}
