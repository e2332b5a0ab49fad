package attention

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by the allocator.
var (
	// ErrNonPositiveBudget indicates a total budget ≤ 0.
	ErrNonPositiveBudget = errors.New("attention: total budget must be positive")

	// ErrBlankNodeID indicates an empty node identifier at registration.
	ErrBlankNodeID = errors.New("attention: node id is empty")

	// ErrDuplicateNode indicates a second registration of the same id.
	ErrDuplicateNode = errors.New("attention: node already registered")

	// ErrNonPositiveCost indicates a processing cost ≤ 0.
	ErrNonPositiveCost = errors.New("attention: processing cost must be positive")
)

// Concept is the closed set of node kinds the allocator schedules.
// Focus matches on the concept, never on substrings of a free-form name.
type Concept int

const (
	// ConceptIngredient marks ingredient-interaction concerns.
	ConceptIngredient Concept = iota

	// ConceptProperty marks predicted-property concerns.
	ConceptProperty

	// ConceptConstraint marks constraint/compliance concerns.
	ConceptConstraint

	// ConceptOutcome marks end-result concerns.
	ConceptOutcome

	// ConceptTask marks optimizer sub-task concerns.
	ConceptTask
)

// String returns the lowercase concept name.
func (c Concept) String() string {
	switch c {
	case ConceptIngredient:
		return "ingredient"
	case ConceptProperty:
		return "property"
	case ConceptConstraint:
		return "constraint"
	case ConceptOutcome:
		return "outcome"
	default:
		return "task"
	}
}

// Fixed update constants of the attention dynamics. They come as a set: the
// reinforcement gains are tuned against the decay rates, so they are not
// individually configurable.
const (
	reinforceSTIGain        = 0.1
	reinforceLTIGain        = 0.05
	reinforceConfidenceGain = 0.02
	negativeFeedbackFactor  = 0.9
	vltiMultiplier          = 1.5
	ltiDecayOffset          = 0.05 // LTI decays at DecayRate + offset
	focusUrgencyBoost       = 0.3
)

// Value is the composite attention record of one node.
type Value struct {
	// STI is short-term importance: immediate relevance, fast decay.
	STI float64

	// LTI is long-term importance: strategic relevance, slow decay.
	LTI float64

	// VLTI is the sticky very-long-term-important flag; it multiplies the
	// total by 1.5 and never decays.
	VLTI bool

	// Confidence in [0, 1] scales the total multiplicatively.
	Confidence float64

	// Urgency scales the total multiplicatively and decays fast.
	Urgency float64
}

// Total folds the record into one scalar priority.
func (v Value) Total() float64 {
	base := v.STI + v.LTI
	multiplier := 1.0
	if v.VLTI {
		multiplier *= vltiMultiplier
	}
	multiplier *= 1.0 + v.Confidence
	multiplier *= 1.0 + v.Urgency
	return base * multiplier
}

// decay applies one cycle of temporal decay. Long-term importance decays
// more slowly than short-term importance and urgency.
func (v *Value) decay(rate float64) {
	v.STI *= rate
	v.Urgency *= rate
	v.LTI *= rate + ltiDecayOffset
}

// reinforce strengthens the record proportionally to a success strength.
func (v *Value) reinforce(strength float64) {
	v.STI += strength * reinforceSTIGain
	v.LTI += strength * reinforceLTIGain
	v.Confidence += strength * reinforceConfidenceGain
	if v.Confidence > 1.0 {
		v.Confidence = 1.0
	}
}

// Options configures the allocator.
//
// HistoryWindow     – bounded activation-history capacity per node (default 100).
// MinAllocation     – allocations at or below this are dropped (default 0.01).
// ActivityThreshold – minimum allocation for Hebbian co-activation (default 0.1).
// DecayRate         – per-cycle decay for STI/urgency, < 1 (default 0.95).
// LearningRate      – Hebbian learning rate (default 0.01).
// WeightDecay       – Hebbian weight decay, bounds edge growth (default 0.001).
// Logger            – optional structured logger; nil means no logging.
type Options struct {
	HistoryWindow     int
	MinAllocation     float64
	ActivityThreshold float64
	DecayRate         float64
	LearningRate      float64
	WeightDecay       float64
	Logger            *zap.Logger
}

// Option is a functional option for configuring the allocator.
type Option func(*Options)

// WithHistoryWindow overrides the per-node activation-history capacity.
// Non-positive values panic (programmer error).
func WithHistoryWindow(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("attention: history window must be positive")
		}
		o.HistoryWindow = n
	}
}

// WithDecayRate overrides the per-cycle attention decay. Must be in (0, 1).
func WithDecayRate(rate float64) Option {
	return func(o *Options) {
		if rate <= 0 || rate >= 1 {
			panic("attention: decay rate must be in (0, 1)")
		}
		o.DecayRate = rate
	}
}

// WithHebbian overrides the Hebbian learning and weight-decay rates.
// Both must be positive.
func WithHebbian(learningRate, weightDecay float64) Option {
	return func(o *Options) {
		if learningRate <= 0 || weightDecay <= 0 {
			panic("attention: hebbian rates must be positive")
		}
		o.LearningRate = learningRate
		o.WeightDecay = weightDecay
	}
}

// WithLogger attaches a structured logger for per-cycle debug output.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// DefaultOptions returns the allocator defaults.
func DefaultOptions() Options {
	return Options{
		HistoryWindow:     100,
		MinAllocation:     0.01,
		ActivityThreshold: 0.1,
		DecayRate:         0.95,
		LearningRate:      0.01,
		WeightDecay:       0.001,
	}
}
