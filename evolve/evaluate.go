// Package evolve - evaluate.go
// Hard constraint classification and multi-objective scoring.
//
// Evaluation is a pure function of a single candidate: it reads the shared
// pool/target tables and writes only the candidate's own fields, which is
// what makes the parallel fan-out in optimize.go safe.
package evolve

import (
	"github.com/ReZonArc/ocskn/bioscale"
	"github.com/ReZonArc/ocskn/ingredient"
	"github.com/ReZonArc/ocskn/reduce"
)

// evalContext bundles the per-run read-only inputs of candidate evaluation.
type evalContext struct {
	keys        []string  // pool ingredients, fixed order
	targetKeys  []string  // sorted target effect names
	target      map[string]float64
	constraints []reduce.Constraint
	weights     Weights
}

// evaluate classifies c against the hard constraints and, when satisfied,
// scores every objective and folds them into the scalar fitness.
// Violating candidates get fitness 0 and nil Objectives.
func (ec *evalContext) evaluate(c *Candidate) {
	c.Satisfied = ec.satisfies(c)
	if !c.Satisfied {
		c.Objectives = nil
		c.Fitness = 0
		return
	}
	ec.score(c)
	var fitness float64
	// Declaration order fixes the float fold; ranging over the weights map
	// would accumulate in randomized order and drift in the last bits.
	for obj := Efficacy; obj <= Sustainability; obj++ {
		fitness += ec.weights[obj] * c.Objectives[obj]
	}
	c.Fitness = fitness
}

// satisfies checks concentration bounds, required presence and incompatible
// pairs. A pair only counts as violated when both sides carry a strictly
// positive concentration: a zeroed-out ingredient is absent in substance
// even though its key survives crossover.
func (ec *evalContext) satisfies(c *Candidate) bool {
	for _, cons := range ec.constraints {
		name := ingredient.Canonical(cons.Ingredient)
		conc := c.Ingredients[name]
		if cons.Required && conc <= 0 {
			return false
		}
		if conc < cons.Min || conc > cons.Max {
			return false
		}
		if conc > 0 {
			for _, other := range cons.IncompatibleWith {
				if c.Ingredients[ingredient.Canonical(other)] > 0 {
					return false
				}
			}
		}
	}
	return true
}

// score fills c.Objectives from the multiscale effect prediction and the
// ingredient cost/origin tables. All float accumulation iterates the fixed
// key slices so repeated evaluations are bit-identical.
func (ec *evalContext) score(c *Candidate) {
	effects := bioscale.Predict(c.Ingredients)

	obj := make(map[Objective]float64, 6)
	obj[Efficacy] = ec.efficacy(effects)
	obj[Safety] = clampScore(1 - effects[bioscale.EffectIrritationRisk])
	obj[Cost] = ec.costScore(c)
	obj[Stability] = ec.stabilityScore(c)
	obj[Regulatory] = 1 // hard constraints already held
	obj[Sustainability] = ec.sustainabilityScore(c)
	c.Objectives = obj
}

// efficacy is the mean closeness of predicted effects to the target
// profile; target effects the model never produces contribute zero.
func (ec *evalContext) efficacy(effects bioscale.Effects) float64 {
	if len(ec.targetKeys) == 0 {
		return 0
	}
	var sum float64
	for _, name := range ec.targetKeys {
		predicted, ok := effects[name]
		if !ok {
			continue
		}
		diff := ec.target[name] - predicted
		if diff < 0 {
			diff = -diff
		}
		sum += 1 - diff
	}
	return clampScore(sum / float64(len(ec.targetKeys)))
}

// costScore rewards cheap formulations: 1 at zero cost, 0 once the
// weighted unit cost of a 100 g batch reaches 100 currency units.
func (ec *evalContext) costScore(c *Candidate) float64 {
	var total float64
	for _, name := range ec.keys {
		total += c.Ingredients[name] * ingredient.UnitCost(name)
	}
	return clampScore(1 - total/100)
}

// stabilityScore starts from a neutral 0.5 and credits the concentration
// of every antioxidant-tagged ingredient, saturating at 1.
func (ec *evalContext) stabilityScore(c *Candidate) float64 {
	score := 0.5
	for _, name := range ec.keys {
		if ingredient.HasTag(name, ingredient.TagAntioxidant) {
			score += 0.1 * c.Ingredients[name]
		}
	}
	if score > 1 {
		return 1
	}
	return score
}

// sustainabilityScore is the mass fraction of naturally derived
// ingredients.
func (ec *evalContext) sustainabilityScore(c *Candidate) float64 {
	var natural float64
	for _, name := range ec.keys {
		if ingredient.IsNatural(name) {
			natural += c.Ingredients[name]
		}
	}
	return clampScore(natural / 100)
}

// clampScore clips x into [0, 1].
func clampScore(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
