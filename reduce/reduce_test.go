package reduce_test

import (
	"testing"

	"github.com/ReZonArc/ocskn/ingredient"
	"github.com/ReZonArc/ocskn/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReduce_EmptyTarget verifies up-front rejection of an empty target list.
func TestReduce_EmptyTarget(t *testing.T) {
	_, err := reduce.Reduce(nil, nil)
	assert.ErrorIs(t, err, reduce.ErrEmptyTarget)
}

// TestReduce_InvertedBounds verifies up-front rejection of Min > Max.
func TestReduce_InvertedBounds(t *testing.T) {
	constraints := []reduce.Constraint{{Ingredient: "RETINOL", Min: 2.0, Max: 1.0}}
	_, err := reduce.Reduce([]string{"AQUA"}, constraints)
	assert.ErrorIs(t, err, reduce.ErrInvertedBounds)
}

// TestReduce_BaseSetFirst verifies that the target ingredients open the pool
// in label order.
func TestReduce_BaseSetFirst(t *testing.T) {
	res, err := reduce.Reduce([]string{"AQUA", "GLYCERIN", "NIACINAMIDE"}, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.ViableIngredients), 3)

	assert.Equal(t, []string{"AQUA", "GLYCERIN", "NIACINAMIDE"}, res.ViableIngredients[:3])
}

// TestReduce_IncompatibleWithBase verifies that additions clashing with a
// base ingredient are excluded (retinol in the base drops ascorbic acid,
// glycolic acid and benzoyl peroxide).
func TestReduce_IncompatibleWithBase(t *testing.T) {
	res, err := reduce.Reduce([]string{"AQUA", "RETINOL"}, nil, reduce.WithMaxIngredients(30))
	require.NoError(t, err)

	assert.NotContains(t, res.ViableIngredients, "ASCORBIC ACID")
	assert.NotContains(t, res.ViableIngredients, "GLYCOLIC ACID")
	assert.NotContains(t, res.ViableIngredients, "BENZOYL PEROXIDE")
	assert.Contains(t, res.ViableIngredients, "HYALURONIC ACID")
}

// TestReduce_ConstraintIncompatibilitySet verifies that ingredients named in
// a constraint's incompatibility set are excluded from the pool.
func TestReduce_ConstraintIncompatibilitySet(t *testing.T) {
	constraints := []reduce.Constraint{
		{Ingredient: "ASCORBIC ACID", Min: 0, Max: 15, IncompatibleWith: []string{"PHENOXYETHANOL"}},
	}

	res, err := reduce.Reduce([]string{"AQUA", "GLYCERIN"}, constraints, reduce.WithMaxIngredients(30))
	require.NoError(t, err)
	assert.NotContains(t, res.ViableIngredients, "PHENOXYETHANOL")
}

// TestReduce_MinAboveCeiling verifies that a constraint minimum above the
// regulatory ceiling removes the constrained ingredient (retinol EU ceiling
// is 1%).
func TestReduce_MinAboveCeiling(t *testing.T) {
	constraints := []reduce.Constraint{{Ingredient: "RETINOL", Min: 5.0, Max: 10.0}}

	res, err := reduce.Reduce([]string{"AQUA", "GLYCERIN"}, constraints, reduce.WithMaxIngredients(30))
	require.NoError(t, err)
	assert.NotContains(t, res.ViableIngredients, "RETINOL")
}

// TestReduce_PoolCap verifies the MaxIngredients cap and the exponent of the
// combinatorial estimate.
func TestReduce_PoolCap(t *testing.T) {
	res, err := reduce.Reduce([]string{"AQUA"}, nil, reduce.WithMaxIngredients(5))
	require.NoError(t, err)

	assert.Len(t, res.ViableIngredients, 5, "pool must be capped")
	assert.Greater(t, res.ReductionFactor, 1.0, "filtering must shrink the space")
}

// TestReduce_ReductionFactorReportingOnly verifies the factor is consistent
// with the recorded spaces; nothing else in the package consumes it.
func TestReduce_ReductionFactorReportingOnly(t *testing.T) {
	res, err := reduce.Reduce([]string{"AQUA", "GLYCERIN"}, nil)
	require.NoError(t, err)

	assert.InDelta(t, res.OriginalSpace/res.ReducedSpace, res.ReductionFactor, res.ReductionFactor*1e-9)
}

// TestReduce_Deterministic verifies repeated runs give identical pools.
func TestReduce_Deterministic(t *testing.T) {
	first, err := reduce.Reduce([]string{"AQUA", "GLYCERIN", "RETINOL"}, nil)
	require.NoError(t, err)
	second, err := reduce.Reduce([]string{"AQUA", "GLYCERIN", "RETINOL"}, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestReduce_JurisdictionScoped verifies the ceiling check follows the
// selected jurisdiction (retinol has no International ceiling entry).
func TestReduce_JurisdictionScoped(t *testing.T) {
	constraints := []reduce.Constraint{{Ingredient: "RETINOL", Min: 5.0, Max: 10.0}}

	res, err := reduce.Reduce([]string{"AQUA", "RETINOL"}, constraints,
		reduce.WithJurisdiction(ingredient.International), reduce.WithMaxIngredients(30))
	require.NoError(t, err)
	assert.Contains(t, res.ViableIngredients, "RETINOL",
		"no ceiling entry for the jurisdiction means no minimum check")
}

// TestMetrics_RunningAverages verifies the fold over successive runs.
func TestMetrics_RunningAverages(t *testing.T) {
	var m reduce.Metrics

	m.Update(10.0, true)
	m.Update(20.0, false)

	assert.Equal(t, 2, m.TotalSearches)
	assert.InDelta(t, 15.0, m.AverageReductionFactor, 1e-9)
	assert.InDelta(t, 0.5, m.ComplianceSuccessRate, 1e-9)
}
