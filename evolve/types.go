// Package evolve - types.go
// Candidate, objective and result types plus sentinel errors for the
// formulation optimizer.
package evolve

import (
	"errors"
	"time"

	"github.com/ReZonArc/ocskn/attention"
	"github.com/ReZonArc/ocskn/inci"
)

// Sentinel errors returned by New and Optimize.
var (
	// ErrEmptyPool - the viable ingredient pool passed to Optimize is empty.
	ErrEmptyPool = errors.New("evolve: viable ingredient pool is empty")
	// ErrBadParams - run parameters failed validation; the returned error
	// wraps this sentinel together with the field-level detail.
	ErrBadParams = errors.New("evolve: invalid run parameters")
)

// Objective identifies one axis of the multi-objective fitness function.
type Objective int

// Fitness axes, in weight-table order.
const (
	Efficacy Objective = iota
	Safety
	Cost
	Stability
	Regulatory
	Sustainability
)

// String implements fmt.Stringer.
func (o Objective) String() string {
	switch o {
	case Efficacy:
		return "efficacy"
	case Safety:
		return "safety"
	case Cost:
		return "cost"
	case Stability:
		return "stability"
	case Regulatory:
		return "regulatory"
	case Sustainability:
		return "sustainability"
	default:
		return "unknown"
	}
}

// Weights maps each objective to its share of the scalar fitness.
// Weights are used as given; they are not renormalized.
type Weights map[Objective]float64

// DefaultWeights returns the standard objective weighting. The table sums
// to 1 so that fitness stays within [0, 1] for fully satisfied candidates.
func DefaultWeights() Weights {
	return Weights{
		Efficacy:       0.30,
		Safety:         0.25,
		Cost:           0.15,
		Stability:      0.15,
		Regulatory:     0.10,
		Sustainability: 0.05,
	}
}

// Candidate is one formulation in the population: a concentration vector
// over the ingredient pool plus its most recent evaluation.
type Candidate struct {
	// Ingredients maps canonical INCI name → concentration in percent.
	Ingredients map[string]float64
	// Objectives holds the per-axis scores from the last evaluation;
	// nil for candidates that violated a hard constraint.
	Objectives map[Objective]float64
	// Satisfied reports whether every hard constraint held.
	Satisfied bool
	// Fitness is the weighted scalar score; 0 when !Satisfied.
	Fitness float64
	// Generation records the generation the candidate was created in.
	Generation int
}

// snapshot returns a deep copy decoupled from the live population.
func (c *Candidate) snapshot() Candidate {
	cp := *c
	cp.Ingredients = make(map[string]float64, len(c.Ingredients))
	for k, v := range c.Ingredients {
		cp.Ingredients[k] = v
	}
	if c.Objectives != nil {
		cp.Objectives = make(map[Objective]float64, len(c.Objectives))
		for k, v := range c.Objectives {
			cp.Objectives[k] = v
		}
	}
	return cp
}

// clone returns an independent copy that keeps the parent's evaluation.
func (c *Candidate) clone() *Candidate {
	cp := c.snapshot()
	return &cp
}

// Result is the TERMINAL output of one optimization run.
type Result struct {
	// RunID uniquely identifies the run.
	RunID string
	// Best is the highest-fitness candidate of the final population.
	Best Candidate
	// Alternates are the next-ranked candidates after Best, best first.
	Alternates []Candidate
	// GenerationsCompleted counts evaluated generations (≤ MaxGenerations).
	GenerationsCompleted int
	// Converged reports whether the variance stopping rule fired early.
	Converged bool
	// FitnessHistory holds the best fitness of each completed generation.
	FitnessHistory []float64
	// PoolSize is the number of distinct ingredients optimized over.
	PoolSize int
	// FinalPopulation is the population size at termination.
	FinalPopulation int
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
	// Compliance validates Best against the run's jurisdiction.
	Compliance inci.Report
	// Attention is the allocator state snapshot taken at termination.
	Attention attention.Report
}
