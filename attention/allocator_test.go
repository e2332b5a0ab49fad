package attention_test

import (
	"testing"

	"github.com/ReZonArc/ocskn/attention"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAllocator builds a fresh allocator or fails the test.
func newAllocator(t *testing.T, budget float64, opt ...attention.Option) *attention.Allocator {
	t.Helper()
	a, err := attention.New(budget, opt...)
	require.NoError(t, err)
	return a
}

// TestNew_BudgetGuard verifies rejection of non-positive budgets.
func TestNew_BudgetGuard(t *testing.T) {
	_, err := attention.New(0)
	assert.ErrorIs(t, err, attention.ErrNonPositiveBudget)

	_, err = attention.New(-5)
	assert.ErrorIs(t, err, attention.ErrNonPositiveBudget)
}

// TestRegister_Guards verifies the registration sentinels.
func TestRegister_Guards(t *testing.T) {
	a := newAllocator(t, 100)

	assert.ErrorIs(t, a.Register("", attention.ConceptTask, 0.5, 1), attention.ErrBlankNodeID)
	assert.ErrorIs(t, a.Register("n", attention.ConceptTask, 0.5, 0), attention.ErrNonPositiveCost)

	require.NoError(t, a.Register("n", attention.ConceptTask, 0.5, 1))
	assert.ErrorIs(t, a.Register("n", attention.ConceptTask, 0.5, 1), attention.ErrDuplicateNode)
}

// TestAllocate_PriorityOrdering covers the three-node scenario: intrinsic
// importances 0.9 / 0.3 / 0.6, equal task requirements, budget 100 — the
// strongest node must out-receive the weakest.
func TestAllocate_PriorityOrdering(t *testing.T) {
	a := newAllocator(t, 100)
	require.NoError(t, a.Register("strong", attention.ConceptProperty, 0.9, 1))
	require.NoError(t, a.Register("weak", attention.ConceptProperty, 0.3, 1))
	require.NoError(t, a.Register("middle", attention.ConceptProperty, 0.6, 1))

	allocations := a.Allocate(map[string]float64{"strong": 0.5, "weak": 0.5, "middle": 0.5}, nil)

	require.Contains(t, allocations, "strong")
	require.Contains(t, allocations, "weak")
	assert.Greater(t, allocations["strong"], allocations["weak"])
	assert.Greater(t, allocations["strong"], allocations["middle"])
}

// TestAllocate_BudgetBound verifies Σ allocation·cost ≤ budget and strictly
// positive allocations, with heterogeneous processing costs.
func TestAllocate_BudgetBound(t *testing.T) {
	a := newAllocator(t, 50)
	require.NoError(t, a.Register("cheap", attention.ConceptTask, 0.8, 1.0))
	require.NoError(t, a.Register("pricey", attention.ConceptTask, 0.9, 2.5))
	require.NoError(t, a.Register("mid", attention.ConceptTask, 0.7, 1.5))

	for cycle := 0; cycle < 5; cycle++ {
		allocations := a.Allocate(nil, nil)

		spent := 0.0
		costs := map[string]float64{"cheap": 1.0, "pricey": 2.5, "mid": 1.5}
		for id, allocation := range allocations {
			assert.Greater(t, allocation, 0.0, id)
			spent += allocation * costs[id]
		}
		assert.LessOrEqual(t, spent, 50.0+1e-9, "cycle %d overspent", cycle)
	}
}

// TestAllocate_EmptyTableDegrades verifies the empty-table and zero-priority
// degradations produce empty allocations, never a failure.
func TestAllocate_EmptyTableDegrades(t *testing.T) {
	a := newAllocator(t, 100)
	assert.Empty(t, a.Allocate(nil, nil), "no nodes, no allocation")

	// A node with zero importance, confidence 0.5 and no requirement still
	// scores zero only if its total attention is zero.
	require.NoError(t, a.Register("idle", attention.ConceptTask, 0, 1))
	assert.Empty(t, a.Allocate(nil, nil), "all-zero priorities degrade to no allocation")
}

// TestAllocate_UnknownIDsIgnored verifies unknown ids in requirements and
// feedback are skipped without effect.
func TestAllocate_UnknownIDsIgnored(t *testing.T) {
	a := newAllocator(t, 100)
	require.NoError(t, a.Register("known", attention.ConceptTask, 0.5, 1))

	allocations := a.Allocate(
		map[string]float64{"ghost": 0.9, "known": 0.5},
		map[string]float64{"phantom": 0.99},
	)

	assert.Contains(t, allocations, "known")
	assert.NotContains(t, allocations, "ghost")
}

// TestFeedback_ReinforcementAndDecay verifies feedback above 0.5 raises the
// attention value and feedback at or below 0.5 lowers short-term importance.
func TestFeedback_ReinforcementAndDecay(t *testing.T) {
	a := newAllocator(t, 100)
	require.NoError(t, a.Register("up", attention.ConceptTask, 0.5, 1))
	require.NoError(t, a.Register("down", attention.ConceptTask, 0.5, 1))

	before := map[string]attention.Value{}
	for _, id := range []string{"up", "down"} {
		v, ok := a.NodeValue(id)
		require.True(t, ok)
		before[id] = v
	}

	a.Allocate(nil, map[string]float64{"up": 0.9, "down": 0.2})

	upAfter, _ := a.NodeValue("up")
	downAfter, _ := a.NodeValue("down")

	// "up" was reinforced before the decay step; its LTI must exceed the
	// decayed baseline of "down".
	assert.Greater(t, upAfter.LTI, downAfter.LTI)
	assert.Greater(t, upAfter.Confidence, before["up"].Confidence)
	assert.Less(t, downAfter.STI, before["down"].STI)
}

// TestHebbian_CoActivationStrengthens verifies the edge weight grows when
// both endpoints are active in the same cycle, and stays within [-1, 1].
func TestHebbian_CoActivationStrengthens(t *testing.T) {
	a := newAllocator(t, 100)
	require.NoError(t, a.Register("a", attention.ConceptIngredient, 0.8, 1))
	require.NoError(t, a.Register("b", attention.ConceptIngredient, 0.7, 1))
	a.Connect("a", "b", 0.2)

	a.Allocate(map[string]float64{"a": 0.8, "b": 0.8}, nil)

	w, ok := a.EdgeWeight("a", "b")
	require.True(t, ok)
	assert.Greater(t, w, 0.2, "co-activation must strengthen the edge")
	assert.LessOrEqual(t, w, 1.0)
}

// TestHebbian_ClampUnderSaturation verifies the weight clamp holds under an
// aggressive learning rate across many cycles.
func TestHebbian_ClampUnderSaturation(t *testing.T) {
	a := newAllocator(t, 100, attention.WithHebbian(0.5, 0.001))
	require.NoError(t, a.Register("x", attention.ConceptTask, 0.9, 1))
	require.NoError(t, a.Register("y", attention.ConceptTask, 0.9, 1))
	a.Connect("x", "y", 0.9)
	a.Connect("y", "x", -0.9)

	for cycle := 0; cycle < 50; cycle++ {
		a.Allocate(map[string]float64{"x": 1, "y": 1}, map[string]float64{"x": 0.9, "y": 0.9})

		for _, pair := range [][2]string{{"x", "y"}, {"y", "x"}} {
			w, ok := a.EdgeWeight(pair[0], pair[1])
			require.True(t, ok)
			assert.GreaterOrEqual(t, w, -1.0)
			assert.LessOrEqual(t, w, 1.0)
		}
	}
}

// TestConnect_UnknownEndpointsIgnored verifies Connect is a no-op for
// unregistered endpoints.
func TestConnect_UnknownEndpointsIgnored(t *testing.T) {
	a := newAllocator(t, 100)
	require.NoError(t, a.Register("real", attention.ConceptTask, 0.5, 1))

	a.Connect("real", "ghost", 0.5)
	a.Connect("ghost", "real", 0.5)

	_, ok := a.EdgeWeight("real", "ghost")
	assert.False(t, ok)
}

// TestDecay_AttenuatesWithoutFeedback verifies short-term importance shrinks
// across idle cycles while long-term importance shrinks more slowly.
func TestDecay_AttenuatesWithoutFeedback(t *testing.T) {
	// At the default 0.95 rate the long-term factor is exactly 1.0; use a
	// lower rate so both components visibly decay.
	a := newAllocator(t, 100, attention.WithDecayRate(0.9))
	require.NoError(t, a.Register("n", attention.ConceptTask, 1.0, 1))

	initial, _ := a.NodeValue("n")
	a.Allocate(nil, nil)
	after, _ := a.NodeValue("n")

	assert.Less(t, after.STI, initial.STI)
	assert.Less(t, after.LTI, initial.LTI)
	assert.Greater(t, after.LTI/initial.LTI, after.STI/initial.STI,
		"long-term importance must decay more slowly")
}

// TestFocus_BoostsMatchingConcept verifies Focus boosts only nodes of the
// matching concept.
func TestFocus_BoostsMatchingConcept(t *testing.T) {
	a := newAllocator(t, 100)
	require.NoError(t, a.Register("compliance", attention.ConceptConstraint, 0.4, 1))
	require.NoError(t, a.Register("texture", attention.ConceptProperty, 0.4, 1))

	a.Focus(attention.ConceptConstraint, 2.0)

	boosted, _ := a.NodeValue("compliance")
	untouched, _ := a.NodeValue("texture")

	assert.InDelta(t, 0.8, boosted.STI, 1e-9, "STI doubles under intensity 2.0")
	assert.InDelta(t, 0.3, boosted.Urgency, 1e-9, "urgency gets the fixed bump")
	assert.InDelta(t, 0.4, untouched.STI, 1e-9)
}

// TestReport_Summary verifies the utilization/success/waste summary.
func TestReport_Summary(t *testing.T) {
	a := newAllocator(t, 100)
	require.NoError(t, a.Register("a", attention.ConceptTask, 0.8, 1))
	require.NoError(t, a.Register("b", attention.ConceptTask, 0.6, 1))

	a.Allocate(map[string]float64{"a": 0.7, "b": 0.7}, map[string]float64{"a": 0.9, "b": 0.3})
	a.Allocate(map[string]float64{"a": 0.7, "b": 0.7}, map[string]float64{"a": 0.8, "b": 0.6})

	r := a.Report()
	assert.Equal(t, 2, r.TotalNodes)
	assert.Equal(t, 2, r.HistoryLength)
	assert.InDelta(t, 75.0, r.SuccessRate, 1e-9, "3 of 4 feedback entries above 0.5")
	assert.InDelta(t, 75.0, r.WasteReduction, 1e-9)
	assert.Greater(t, r.BudgetUtilization, 0.0)
	assert.LessOrEqual(t, r.BudgetUtilization, 100.0)

	require.NotEmpty(t, r.TopPriority)
	assert.Equal(t, "a", r.TopPriority[0].ID, "strongest node leads the priority list")
}

// TestAllocate_Deterministic verifies two identically driven allocators
// produce identical cycles.
func TestAllocate_Deterministic(t *testing.T) {
	build := func() *attention.Allocator {
		a := newAllocator(t, 100)
		require.NoError(t, a.Register("one", attention.ConceptTask, 0.9, 2))
		require.NoError(t, a.Register("two", attention.ConceptTask, 0.4, 1))
		require.NoError(t, a.Register("three", attention.ConceptTask, 0.6, 1.5))
		a.Connect("one", "two", 0.3)
		return a
	}

	left, right := build(), build()
	reqs := map[string]float64{"one": 0.5, "two": 0.9, "three": 0.1}
	for cycle := 0; cycle < 10; cycle++ {
		assert.Equal(t, left.Allocate(reqs, nil), right.Allocate(reqs, nil), "cycle %d", cycle)
	}
}

// TestReport_EfficiencyBitIdentical verifies that two identically driven
// allocators report the exact same efficiency figure: the cycle score folds
// allocations in registration order, so the sum never depends on map
// iteration.
func TestReport_EfficiencyBitIdentical(t *testing.T) {
	build := func() *attention.Allocator {
		a := newAllocator(t, 100)
		require.NoError(t, a.Register("alpha", attention.ConceptTask, 0.9, 2))
		require.NoError(t, a.Register("beta", attention.ConceptTask, 0.4, 1))
		require.NoError(t, a.Register("gamma", attention.ConceptTask, 0.6, 1.5))
		require.NoError(t, a.Register("delta", attention.ConceptProperty, 0.7, 1))
		require.NoError(t, a.Register("epsilon", attention.ConceptProperty, 0.2, 0.5))
		return a
	}

	left, right := build(), build()
	reqs := map[string]float64{
		"alpha": 0.5, "beta": 0.9, "gamma": 0.1, "delta": 0.4, "epsilon": 0.8,
	}
	feedback := map[string]float64{"alpha": 0.8, "beta": 0.2}
	for cycle := 0; cycle < 10; cycle++ {
		left.Allocate(reqs, feedback)
		right.Allocate(reqs, feedback)
	}

	assert.Equal(t, left.Report().RecentEfficiency, right.Report().RecentEfficiency)
}
