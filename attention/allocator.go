package attention

import (
	"sort"

	"go.uber.org/zap"
)

// Weights combining intrinsic attention with external task requirements when
// scoring a node for one cycle.
const (
	intrinsicWeight   = 0.6
	requirementWeight = 0.4
)

// node is one entry of the allocator's table. Owned exclusively by the
// allocator; node lifetime equals the allocator's lifetime.
type node struct {
	id      string
	concept Concept
	value   Value
	cost    float64
	edges   map[string]float64
	history []float64
}

// Allocator is the adaptive attention scheduler.
//
// Single-writer: one Allocate cycle mutates the table and must complete
// before the next begins. Not safe for concurrent use.
type Allocator struct {
	budget float64
	used   float64
	opts   Options

	nodes map[string]*node
	order []string // registration order; the deterministic iteration base

	// Per-cycle efficiency history and feedback counters.
	efficiencies []float64
	successes    int
	wasted       int
	feedbackSeen int

	log *zap.Logger
}

// New constructs an allocator with the given total per-cycle budget.
//
// Errors: ErrNonPositiveBudget.
func New(budget float64, opt ...Option) (*Allocator, error) {
	if budget <= 0 {
		return nil, ErrNonPositiveBudget
	}

	opts := DefaultOptions()
	for _, o := range opt {
		o(&opts)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Allocator{
		budget: budget,
		opts:   opts,
		nodes:  make(map[string]*node),
		log:    log,
	}, nil
}

// Register adds a node to the attention network. Long-term importance is
// seeded at half the initial importance, confidence at the neutral 0.5.
//
// Errors: ErrBlankNodeID, ErrDuplicateNode, ErrNonPositiveCost.
func (a *Allocator) Register(id string, concept Concept, initialImportance, processingCost float64) error {
	if id == "" {
		return ErrBlankNodeID
	}
	if _, exists := a.nodes[id]; exists {
		return ErrDuplicateNode
	}
	if processingCost <= 0 {
		return ErrNonPositiveCost
	}

	a.nodes[id] = &node{
		id:      id,
		concept: concept,
		value: Value{
			STI:        initialImportance,
			LTI:        initialImportance * 0.5,
			Confidence: 0.5,
		},
		cost:  processingCost,
		edges: make(map[string]float64),
	}
	a.order = append(a.order, id)

	return nil
}

// Connect creates (or resets) a directed edge with the given initial weight,
// clamped to [-1, 1]. Unknown endpoints are ignored, never fatal.
func (a *Allocator) Connect(from, to string, weight float64) {
	n, ok := a.nodes[from]
	if !ok {
		return
	}
	if _, ok = a.nodes[to]; !ok {
		return
	}
	n.edges[to] = clampWeight(weight)
}

// Allocate runs one full cycle: feedback, scoring, budget split, history,
// Hebbian learning and decay (see the package doc for the exact order).
// requirements and feedback may be nil; unknown ids in either are ignored.
//
// Returned allocations are strictly positive and satisfy
// Σ allocation·cost ≤ budget.
//
// Complexity: O(n log n + e) per cycle for n nodes and e edges.
func (a *Allocator) Allocate(requirements, feedback map[string]float64) map[string]float64 {
	a.applyFeedback(feedback)

	// Score and normalize.
	type scored struct {
		id       string
		priority float64
	}
	scores := make([]scored, 0, len(a.order))
	total := 0.0
	for _, id := range a.order {
		n := a.nodes[id]
		p := intrinsicWeight*n.value.Total() + requirementWeight*requirements[id]
		scores = append(scores, scored{id: id, priority: p})
		total += p
	}
	if total > 0 {
		for i := range scores {
			scores[i].priority /= total
		}
	}

	// Highest priority first; stable keeps registration order on ties.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].priority > scores[j].priority
	})

	// Greedy budget split under per-node processing cost.
	allocations := make(map[string]float64)
	remaining := a.budget
	for _, s := range scores {
		n := a.nodes[s.id]

		desired := s.priority * a.budget
		afforded := remaining / n.cost
		allocation := desired
		if afforded < allocation {
			allocation = afforded
		}
		if allocation <= a.opts.MinAllocation {
			continue // dropped, not recorded
		}

		allocations[s.id] = allocation
		remaining -= allocation * n.cost

		n.history = append(n.history, allocation)
		if len(n.history) > a.opts.HistoryWindow {
			n.history = n.history[1:]
		}
	}
	a.used = a.budget - remaining

	a.efficiencies = append(a.efficiencies, a.cycleEfficiency(allocations))
	a.applyHebbian(allocations)
	for _, id := range a.order {
		a.nodes[id].value.decay(a.opts.DecayRate)
	}

	a.log.Debug("attention cycle complete",
		zap.Int("nodes", len(a.order)),
		zap.Int("allocated", len(allocations)),
		zap.Float64("used_budget", a.used),
	)

	return allocations
}

// applyFeedback folds external performance feedback into attention values.
// Feedback above 0.5 reinforces; at or below 0.5 it decays short-term
// importance. Unknown ids are skipped.
func (a *Allocator) applyFeedback(feedback map[string]float64) {
	if len(feedback) == 0 {
		return
	}
	for _, id := range a.order {
		performance, ok := feedback[id]
		if !ok {
			continue
		}
		n := a.nodes[id]
		if performance > 0.5 {
			n.value.reinforce(performance - 0.5)
			a.successes++
		} else {
			n.value.STI *= negativeFeedbackFactor
			a.wasted++
		}
		a.feedbackSeen++
	}
}

// applyHebbian strengthens edges between co-active nodes: both endpoints
// must be allocated above the activity threshold in the same cycle. The
// update is new = old + lr·a_from·a_to − decay·old, clamped to [-1, 1].
func (a *Allocator) applyHebbian(allocations map[string]float64) {
	for _, id := range a.order {
		from, active := allocations[id]
		if !active || from <= a.opts.ActivityThreshold {
			continue
		}
		n := a.nodes[id]
		for to, weight := range n.edges {
			target, ok := allocations[to]
			if !ok || target <= a.opts.ActivityThreshold {
				continue
			}
			updated := weight + a.opts.LearningRate*from*target - a.opts.WeightDecay*weight
			n.edges[to] = clampWeight(updated)
		}
	}
}

// cycleEfficiency scores one allocation: 70% budget utilization plus 30%
// priority-weighted focus bonus.
func (a *Allocator) cycleEfficiency(allocations map[string]float64) float64 {
	if len(allocations) == 0 {
		return 0
	}

	totalAllocated := 0.0
	focusBonus := 0.0
	// Registration order fixes the float fold; ranging over the allocations
	// map would make the figure drift in its last bits between runs.
	for _, id := range a.order {
		allocation, ok := allocations[id]
		if !ok {
			continue
		}
		totalAllocated += allocation
		focusBonus += allocation * a.nodes[id].value.Total()
	}

	return totalAllocated/a.budget*0.7 + focusBonus*0.3
}

// Focus boosts short-term importance and urgency for every node whose
// concept matches area. Intensity multiplies STI; urgency gets a fixed bump.
func (a *Allocator) Focus(area Concept, intensity float64) {
	for _, id := range a.order {
		n := a.nodes[id]
		if n.concept != area {
			continue
		}
		n.value.STI *= intensity
		n.value.Urgency += focusUrgencyBoost
	}
}

// NodeValue returns a copy of the attention value of id.
func (a *Allocator) NodeValue(id string) (Value, bool) {
	n, ok := a.nodes[id]
	if !ok {
		return Value{}, false
	}
	return n.value, true
}

// EdgeWeight returns the current weight of the directed edge from → to.
func (a *Allocator) EdgeWeight(from, to string) (float64, bool) {
	n, ok := a.nodes[from]
	if !ok {
		return 0, false
	}
	w, ok := n.edges[to]
	return w, ok
}

// clampWeight bounds an edge weight to [-1, 1].
func clampWeight(w float64) float64 {
	if w < -1 {
		return -1
	}
	if w > 1 {
		return 1
	}
	return w
}
