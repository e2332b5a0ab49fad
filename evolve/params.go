// Package evolve - params.go
// Run parameters, defaults and validation for the optimizer.
package evolve

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ReZonArc/ocskn/ingredient"
)

// Params configures one optimization run. Zero values are NOT usable;
// start from DefaultParams and override fields as needed.
type Params struct {
	// PopulationSize is the number of candidates per generation.
	PopulationSize int `validate:"gte=2"`
	// MaxGenerations bounds the EVOLVE loop.
	MaxGenerations int `validate:"gte=1"`
	// EliteCount is the number of top candidates copied unchanged into the
	// next generation. Must be strictly less than PopulationSize.
	EliteCount int `validate:"gte=0"`
	// TournamentSize is the number of distinct candidates sampled per
	// parent selection.
	TournamentSize int `validate:"gte=1"`
	// CrossoverRate is the probability that a parent pair recombines;
	// otherwise both parents are cloned.
	CrossoverRate float64 `validate:"gte=0,lte=1"`
	// MutationRate gates mutation per offspring and, once inside, per
	// ingredient.
	MutationRate float64 `validate:"gte=0,lte=1"`
	// MutationSigma is the standard deviation of the Gaussian concentration
	// perturbation, in percent.
	MutationSigma float64 `validate:"gte=0"`
	// MaxPercent is the upper clamp for any single concentration.
	MaxPercent float64 `validate:"gt=0,lte=100"`
	// Weights maps objectives to fitness shares. Nil selects
	// DefaultWeights; negative entries are rejected.
	Weights Weights `validate:"-"`
	// ConvergenceWindow is the trailing generation count inspected by the
	// variance stopping rule.
	ConvergenceWindow int `validate:"gte=5"`
	// ConvergenceThreshold is the variance below which the run stops early.
	ConvergenceThreshold float64 `validate:"gt=0"`
	// Budget is the attention budget used when Optimize has to construct
	// its own allocator.
	Budget float64 `validate:"gt=0"`
	// Seed drives every stochastic operator; 0 selects the fixed default
	// seed, so runs are reproducible unless a seed is chosen per run.
	Seed int64
	// Parallelism caps concurrent candidate evaluations; 0 or 1 evaluates
	// serially.
	Parallelism int `validate:"gte=0"`
	// Jurisdiction scopes the final compliance report.
	Jurisdiction ingredient.Jurisdiction `validate:"-"`
	// Logger receives per-generation debug records; nil means no logging.
	Logger *zap.Logger `validate:"-"`
}

// DefaultParams returns the standard run configuration.
func DefaultParams() Params {
	return Params{
		PopulationSize:       50,
		MaxGenerations:       100,
		EliteCount:           5,
		TournamentSize:       3,
		CrossoverRate:        0.8,
		MutationRate:         0.1,
		MutationSigma:        2.0,
		MaxPercent:           100,
		Weights:              DefaultWeights(),
		ConvergenceWindow:    10,
		ConvergenceThreshold: 0.01,
		Budget:               100,
		Parallelism:          0,
		Jurisdiction:         ingredient.EU,
	}
}

var paramCheck = validator.New(validator.WithRequiredStructEnabled())

// validate reports the first parameter fault as an error wrapping
// ErrBadParams.
func (p Params) validate() error {
	if err := paramCheck.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrBadParams, err)
	}
	if p.EliteCount >= p.PopulationSize {
		return fmt.Errorf("%w: EliteCount %d must be below PopulationSize %d",
			ErrBadParams, p.EliteCount, p.PopulationSize)
	}
	for obj, w := range p.Weights {
		if w < 0 {
			return fmt.Errorf("%w: negative weight %.3f for objective %s",
				ErrBadParams, w, obj)
		}
	}
	return nil
}
