package bioscale

// Effects maps a scale-qualified effect name to a score in [0, 1].
// Purely derived data: it has no lifecycle of its own.
type Effects map[string]float64

// Canonical effect keys produced by the aggregate scales. Per-ingredient
// keys (receptor binding, penetration, …) are composed at runtime.
const (
	EffectCellViability       = "cell_viability"
	EffectCellProliferation   = "cell_proliferation"
	EffectAntioxidantCapacity = "antioxidant_capacity"
	EffectBarrierFunction     = "barrier_function"
	EffectSkinHydration       = "skin_hydration"
	EffectSkinElasticity      = "skin_elasticity"
	EffectSkinBrightness      = "skin_brightness"
	EffectIrritationRisk      = "irritation_risk"
)

// clamp01 clips x into [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// saturating returns min(1, multiplier·concentration), the fixed
// saturating-linear response shared by every scale formula.
func saturating(concentration, multiplier float64) float64 {
	return clamp01(concentration * multiplier)
}
