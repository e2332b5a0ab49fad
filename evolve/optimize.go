// Package evolve - optimize.go
// The genetic control loop: INITIALIZE → EVOLVE → TERMINAL.
package evolve

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"

	"github.com/ReZonArc/ocskn/attention"
	"github.com/ReZonArc/ocskn/inci"
	"github.com/ReZonArc/ocskn/ingredient"
	"github.com/ReZonArc/ocskn/reduce"
)

// Attention task nodes the optimizer registers and drives each generation.
const (
	taskExploration = "search_exploration"
	taskValidation  = "constraint_validation"
	taskEvaluation  = "fitness_evaluation"
	taskConvergence = "convergence_checking"
)

// Phase boundaries of the EVOLVE loop, as fractions of MaxGenerations.
const (
	earlyPhaseEnd  = 0.2
	middlePhaseEnd = 0.7
)

// Initialization bounds, in percent. Solvents start in the bulk range so
// the rescale to 100% does not crush the actives.
const (
	solventInitMin = 20.0
	solventInitMax = 80.0
	activeInitMin  = 0.1
	activeInitMax  = 20.0
)

// alternateCount caps the ranked alternates returned next to Best.
const alternateCount = 5

// Optimizer runs evolutionary formulation searches. It is not safe for
// concurrent use: each Optimize call consumes the shared RNG and mutates
// the run log.
type Optimizer struct {
	params Params
	alloc  *attention.Allocator
	rng    *rand.Rand
	log    *zap.Logger
	runs   []runRecord
}

// runRecord is the per-run digest kept for Summary.
type runRecord struct {
	best        float64
	generations int
	converged   bool
	elapsed     time.Duration
}

// New validates params and builds an Optimizer. When alloc is nil a fresh
// allocator is created with params.Budget; either way the optimizer's task
// nodes are registered (pre-existing nodes are reused as-is).
func New(params Params, alloc *attention.Allocator) (*Optimizer, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if params.Weights == nil {
		params.Weights = DefaultWeights()
	}
	if alloc == nil {
		var err error
		alloc, err = attention.New(params.Budget)
		if err != nil {
			return nil, err
		}
	}
	registerTasks(alloc)

	log := params.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Optimizer{
		params: params,
		alloc:  alloc,
		rng:    rngFromSeed(params.Seed),
		log:    log,
	}, nil
}

// registerTasks declares the four sub-tasks the loop spreads attention
// over. Duplicate registration means the caller pre-seeded the allocator;
// the existing node values win.
func registerTasks(alloc *attention.Allocator) {
	for _, t := range []struct {
		id         string
		importance float64
	}{
		{taskExploration, 0.8},
		{taskValidation, 0.6},
		{taskEvaluation, 0.7},
		{taskConvergence, 0.4},
	} {
		// ErrDuplicateNode means the caller pre-seeded this task; the
		// existing node keeps its learned values. No other failure is
		// reachable with these literals.
		_ = alloc.Register(t.id, attention.ConceptTask, t.importance, 1)
	}
}

// Optimize searches pool for the formulation best matching targetProfile
// under the hard constraints. pool entries are canonicalized and deduped;
// targetProfile maps effect names (see package bioscale) to desired scores.
func (o *Optimizer) Optimize(pool []string, constraints []reduce.Constraint, targetProfile map[string]float64) (Result, error) {
	started := time.Now()

	keys := canonicalPool(pool)
	if len(keys) == 0 {
		return Result{}, ErrEmptyPool
	}
	for _, c := range constraints {
		if err := c.Validate(); err != nil {
			return Result{}, err
		}
	}

	ec := &evalContext{
		keys:        keys,
		targetKeys:  sortedKeys(targetProfile),
		target:      targetProfile,
		constraints: constraints,
		weights:     o.params.Weights,
	}

	runID := uuid.NewString()
	o.log.Info("optimization started",
		zap.String("run_id", runID),
		zap.Int("pool_size", len(keys)),
		zap.Int("constraints", len(constraints)),
		zap.Int("population", o.params.PopulationSize),
	)

	population := o.initPopulation(keys)

	var (
		history   []float64
		converged bool
		feedback  map[string]float64
	)
	generations := 0
	for g := 0; g < o.params.MaxGenerations; g++ {
		o.alloc.Allocate(o.phaseRequirements(g), feedback)

		o.evaluatePopulation(ec, population)
		generations = g + 1

		best, satisfied := generationStats(population)
		history = append(history, best)
		feedback = map[string]float64{
			taskEvaluation: clampScore(best),
			taskValidation: satisfied,
		}

		o.log.Debug("generation evaluated",
			zap.String("run_id", runID),
			zap.Int("generation", g),
			zap.Float64("best_fitness", best),
			zap.Float64("satisfaction_rate", satisfied),
		)

		if o.hasConverged(history) {
			converged = true
			break
		}
		if g+1 < o.params.MaxGenerations {
			population = o.reproduce(population, keys, g+1)
		}
	}

	ranked := rankedCopy(population)
	best := ranked[0].snapshot()
	alternates := make([]Candidate, 0, alternateCount)
	for i := 1; i < len(ranked) && i <= alternateCount; i++ {
		alternates = append(alternates, ranked[i].snapshot())
	}

	elapsed := time.Since(started)
	o.runs = append(o.runs, runRecord{
		best:        best.Fitness,
		generations: generations,
		converged:   converged,
		elapsed:     elapsed,
	})
	o.log.Info("optimization finished",
		zap.String("run_id", runID),
		zap.Int("generations", generations),
		zap.Bool("converged", converged),
		zap.Float64("best_fitness", best.Fitness),
		zap.Duration("elapsed", elapsed),
	)

	return Result{
		RunID:                runID,
		Best:                 best,
		Alternates:           alternates,
		GenerationsCompleted: generations,
		Converged:            converged,
		FitnessHistory:       history,
		PoolSize:             len(keys),
		FinalPopulation:      len(population),
		Elapsed:              elapsed,
		Compliance:           complianceOf(best, o.params.Jurisdiction),
		Attention:            o.alloc.Report(),
	}, nil
}

// initPopulation draws PopulationSize random formulations over keys, each
// rescaled so concentrations sum to exactly 100%.
func (o *Optimizer) initPopulation(keys []string) []*Candidate {
	population := make([]*Candidate, o.params.PopulationSize)
	for i := range population {
		ing := make(map[string]float64, len(keys))
		var total float64
		for _, name := range keys {
			var conc float64
			if ingredient.HasTag(name, ingredient.TagSolvent) {
				conc = solventInitMin + o.rng.Float64()*(solventInitMax-solventInitMin)
			} else {
				conc = activeInitMin + o.rng.Float64()*(activeInitMax-activeInitMin)
			}
			ing[name] = conc
			total += conc
		}
		factor := 100 / total
		var partial float64
		for _, name := range keys[:len(keys)-1] {
			ing[name] *= factor
			partial += ing[name]
		}
		// Exact remainder on the last key kills the rescale rounding drift.
		ing[keys[len(keys)-1]] = 100 - partial
		population[i] = &Candidate{Ingredients: ing}
	}
	return population
}

// evaluatePopulation scores every candidate, fanning out across workers
// when Parallelism > 1. Evaluations are independent and write only their
// own candidate, so results are identical to the serial order.
func (o *Optimizer) evaluatePopulation(ec *evalContext, population []*Candidate) {
	if o.params.Parallelism > 1 {
		it := iter.Iterator[*Candidate]{MaxGoroutines: o.params.Parallelism}
		it.ForEach(population, func(c **Candidate) { ec.evaluate(*c) })
		return
	}
	for _, c := range population {
		ec.evaluate(c)
	}
}

// reproduce builds the next generation: elitism, then tournament-selected
// parents recombined by single-point crossover and perturbed by Gaussian
// mutation. Offspring carry the new generation number.
func (o *Optimizer) reproduce(population []*Candidate, keys []string, generation int) []*Candidate {
	ranked := rankedCopy(population)
	next := make([]*Candidate, 0, len(population))
	for i := 0; i < o.params.EliteCount && i < len(ranked); i++ {
		next = append(next, ranked[i].clone())
	}

	for len(next) < len(population) {
		a := o.tournament(population)
		b := o.tournament(population)

		var childA, childB *Candidate
		if o.rng.Float64() < o.params.CrossoverRate {
			childA, childB = crossover(a, b, keys, o.rng.Intn(len(keys)+1))
		} else {
			childA, childB = a.clone(), b.clone()
		}
		for _, child := range []*Candidate{childA, childB} {
			if len(next) == len(population) {
				break
			}
			child.Generation = generation
			o.mutate(child, keys)
			next = append(next, child)
		}
	}
	return next
}

// tournament samples TournamentSize distinct candidates and returns the
// fittest; ties resolve to the lowest population index.
func (o *Optimizer) tournament(population []*Candidate) *Candidate {
	idxs := sampleDistinct(o.rng, len(population), o.params.TournamentSize)
	best := idxs[0]
	for _, i := range idxs[1:] {
		if population[i].Fitness > population[best].Fitness {
			best = i
		}
	}
	return population[best]
}

// crossover swaps the tails of two parents at cut over the fixed key
// order and returns two fresh offspring. The key set never changes.
func crossover(a, b *Candidate, keys []string, cut int) (*Candidate, *Candidate) {
	childA := &Candidate{Ingredients: make(map[string]float64, len(keys))}
	childB := &Candidate{Ingredients: make(map[string]float64, len(keys))}
	for i, name := range keys {
		if i < cut {
			childA.Ingredients[name] = a.Ingredients[name]
			childB.Ingredients[name] = b.Ingredients[name]
		} else {
			childA.Ingredients[name] = b.Ingredients[name]
			childB.Ingredients[name] = a.Ingredients[name]
		}
	}
	return childA, childB
}

// mutate perturbs the offspring in place: the whole candidate mutates with
// probability MutationRate, and inside a mutating candidate each ingredient
// independently shifts by Gaussian noise, clamped to [0, MaxPercent].
func (o *Optimizer) mutate(c *Candidate, keys []string) {
	if o.rng.Float64() >= o.params.MutationRate {
		return
	}
	for _, name := range keys {
		if o.rng.Float64() >= o.params.MutationRate {
			continue
		}
		conc := c.Ingredients[name] + gaussian(o.rng, o.params.MutationSigma)
		if conc < 0 {
			conc = 0
		}
		if conc > o.params.MaxPercent {
			conc = o.params.MaxPercent
		}
		c.Ingredients[name] = conc
	}
	// The perturbation invalidates any inherited evaluation.
	c.Objectives = nil
	c.Fitness = 0
	c.Satisfied = false
}

// phaseRequirements returns the attention demand of each sub-task for the
// current loop phase: wide exploration early, evaluation-heavy midway,
// convergence-watching late.
func (o *Optimizer) phaseRequirements(generation int) map[string]float64 {
	progress := float64(generation) / float64(o.params.MaxGenerations)
	switch {
	case progress < earlyPhaseEnd:
		return map[string]float64{
			taskExploration: 0.8,
			taskValidation:  0.6,
			taskEvaluation:  0.4,
		}
	case progress < middlePhaseEnd:
		return map[string]float64{
			taskExploration: 0.5,
			taskValidation:  0.7,
			taskEvaluation:  0.8,
			taskConvergence: 0.3,
		}
	default:
		return map[string]float64{
			taskExploration: 0.2,
			taskValidation:  0.8,
			taskEvaluation:  0.9,
			taskConvergence: 0.7,
		}
	}
}

// hasConverged applies the variance stopping rule over the trailing
// ConvergenceWindow best-fitness values.
func (o *Optimizer) hasConverged(history []float64) bool {
	w := o.params.ConvergenceWindow
	if len(history) < w {
		return false
	}
	tail := history[len(history)-w:]
	var mean float64
	for _, v := range tail {
		mean += v
	}
	mean /= float64(w)
	var variance float64
	for _, v := range tail {
		d := v - mean
		variance += d * d
	}
	variance /= float64(w)
	return variance < o.params.ConvergenceThreshold
}

// rankedCopy returns the population sorted by fitness descending. The sort
// is stable so equal-fitness candidates keep their population order.
func rankedCopy(population []*Candidate) []*Candidate {
	ranked := make([]*Candidate, len(population))
	copy(ranked, population)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness > ranked[j].Fitness
	})
	return ranked
}

// generationStats returns the best fitness and the satisfied fraction of
// an evaluated population.
func generationStats(population []*Candidate) (best, satisfied float64) {
	var count float64
	for _, c := range population {
		if c.Fitness > best {
			best = c.Fitness
		}
		if c.Satisfied {
			count++
		}
	}
	return best, count / float64(len(population))
}

// canonicalPool canonicalizes and dedupes pool names, preserving first
// occurrence order.
func canonicalPool(pool []string) []string {
	seen := make(map[string]struct{}, len(pool))
	keys := make([]string, 0, len(pool))
	for _, name := range pool {
		canonical := ingredient.Canonical(name)
		if canonical == "" {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		keys = append(keys, canonical)
	}
	return keys
}

// sortedKeys returns the map's keys in ascending order, fixing the float
// accumulation order of the efficacy score.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// complianceOf validates the best candidate's positive ingredients,
// heaviest first, against the run jurisdiction.
func complianceOf(best Candidate, j ingredient.Jurisdiction) inci.Report {
	names := make([]string, 0, len(best.Ingredients))
	for name, conc := range best.Ingredients {
		if conc > 0 {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, k int) bool {
		if best.Ingredients[names[i]] != best.Ingredients[names[k]] {
			return best.Ingredients[names[i]] > best.Ingredients[names[k]]
		}
		return names[i] < names[k]
	})
	list := make([]inci.Estimated, len(names))
	for i, name := range names {
		list[i] = inci.Estimated{Name: name, Percent: best.Ingredients[name]}
	}
	return inci.Validate(list, j)
}
