package reduce

import (
	"errors"

	"github.com/ReZonArc/ocskn/inci"
	"github.com/ReZonArc/ocskn/ingredient"
)

// Sentinel errors returned by Reduce.
var (
	// ErrEmptyTarget indicates an empty target ordered list.
	ErrEmptyTarget = errors.New("reduce: target ingredient list is empty")

	// ErrInvertedBounds indicates a constraint whose minimum exceeds its
	// maximum.
	ErrInvertedBounds = errors.New("reduce: constraint min exceeds max")
)

// Constraint bounds one ingredient of a formulation.
//
// Invariant: Min ≤ Max. Required demands a strictly positive concentration.
// IncompatibleWith lists identifiers that must not appear alongside the
// constrained ingredient.
type Constraint struct {
	Ingredient       string
	Min              float64
	Max              float64
	Required         bool
	IncompatibleWith []string
}

// Validate checks the structural invariant of the constraint.
func (c Constraint) Validate() error {
	if c.Min > c.Max {
		return ErrInvertedBounds
	}
	return nil
}

// Result is the outcome of a search-space reduction.
//
// ReductionFactor is reporting-only: it never feeds back into the search.
type Result struct {
	// TargetIngredients is the estimated concentration of the target list.
	TargetIngredients []inci.Estimated

	// ViableIngredients is the filtered candidate pool, base set first.
	ViableIngredients []string

	// OriginalSpace is the brute-force combinatorial size:
	// database size raised to the pool-size cap.
	OriginalSpace float64

	// ReducedSpace is the filtered combinatorial size:
	// pool size raised to min(cap, pool size).
	ReducedSpace float64

	// ReductionFactor is OriginalSpace / max(ReducedSpace, 1).
	ReductionFactor float64
}

// Options configures search-space reduction.
//
// MaxIngredients – cap on the candidate pool size and the exponent of the
// combinatorial space estimate (default 15).
// Jurisdiction   – ceiling set used for the constraint-minimum check and the
// target estimate (default EU).
type Options struct {
	MaxIngredients int
	Jurisdiction   ingredient.Jurisdiction
}

// Option is a functional option for configuring Reduce.
type Option func(*Options)

// WithMaxIngredients caps the candidate pool. Non-positive values panic
// (programmer error).
func WithMaxIngredients(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("reduce: MaxIngredients must be positive")
		}
		o.MaxIngredients = n
	}
}

// WithJurisdiction selects the regulatory ceiling set.
func WithJurisdiction(j ingredient.Jurisdiction) Option {
	return func(o *Options) { o.Jurisdiction = j }
}

// DefaultOptions returns the reducer defaults: pool cap 15, EU ceilings.
func DefaultOptions() Options {
	return Options{
		MaxIngredients: 15,
		Jurisdiction:   ingredient.EU,
	}
}
