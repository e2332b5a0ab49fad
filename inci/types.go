package inci

import (
	"errors"
	"fmt"

	"github.com/ReZonArc/ocskn/ingredient"
)

// Sentinel errors returned by the estimator.
var (
	// ErrEmptyList indicates an empty ordered ingredient list.
	ErrEmptyList = errors.New("inci: ingredient list is empty")

	// ErrBlankIngredient indicates an identifier that is empty after trimming.
	ErrBlankIngredient = errors.New("inci: blank ingredient identifier")

	// ErrBadBatchSize indicates a non-positive batch mass.
	ErrBadBatchSize = errors.New("inci: batch mass must be positive")
)

// Estimated is one (identifier, concentration) pair of the estimate.
// Percent is always ≥ 0; the sum over a full estimate never exceeds 100.
type Estimated struct {
	Name    string
	Percent float64
}

// Violation describes one regulatory ceiling breach.
type Violation struct {
	Ingredient string
	Percent    float64
	Ceiling    float64
}

// String renders the violation in the canonical report form.
func (v Violation) String() string {
	return fmt.Sprintf("%s: %.2f%% exceeds limit of %.2f%%", v.Ingredient, v.Percent, v.Ceiling)
}

// Options configures concentration estimation.
//
// Jurisdiction – regulatory ceiling set used for clamping (default EU).
// Headroom     – total the estimate is rescaled to when the raw tiers exceed
// 100%; the gap to 100 covers unlisted trace ingredients (default 95).
type Options struct {
	Jurisdiction ingredient.Jurisdiction
	Headroom     float64
}

// Option is a functional option for configuring estimation.
type Option func(*Options)

// WithJurisdiction selects the regulatory ceiling set used for clamping.
func WithJurisdiction(j ingredient.Jurisdiction) Option {
	return func(o *Options) { o.Jurisdiction = j }
}

// WithHeadroom overrides the rescale target used when raw tiers exceed 100%.
// Must be in (0, 100]; out-of-range values panic (programmer error).
func WithHeadroom(h float64) Option {
	return func(o *Options) {
		if h <= 0 || h > 100 {
			panic("inci: headroom must be in (0, 100]")
		}
		o.Headroom = h
	}
}

// DefaultOptions returns the estimator defaults: EU ceilings, 95% headroom.
func DefaultOptions() Options {
	return Options{
		Jurisdiction: ingredient.EU,
		Headroom:     95.0,
	}
}
