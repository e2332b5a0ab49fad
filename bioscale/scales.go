package bioscale

// Molecular scores molecule-level responses: receptor binding, coenzyme
// synthesis, collagen stimulation and water binding, each keyed by the
// driving ingredient.
//
// Pure and stateless; concentrations are percentages of total mass.
func Molecular(conc map[string]float64) Effects {
	effects := make(Effects)

	if c, ok := conc["RETINOL"]; ok {
		effects["RETINOL_receptor_binding"] = saturating(c, 10.0)
	}
	if c, ok := conc["NIACINAMIDE"]; ok {
		effects["NIACINAMIDE_nad_synthesis"] = saturating(c, 5.0)
	}
	if c, ok := conc["ASCORBIC ACID"]; ok {
		effects["ASCORBIC ACID_collagen_synthesis"] = saturating(c, 2.0)
	}
	if c, ok := conc["HYALURONIC ACID"]; ok {
		effects["HYALURONIC ACID_water_binding"] = saturating(c, 100.0)
	}

	return effects
}

// Cellular scores cell-level responses: viability under active load,
// proliferation and antioxidant capacity.
func Cellular(conc map[string]float64) Effects {
	effects := make(Effects)

	totalActive := conc["RETINOL"] + conc["NIACINAMIDE"] + conc["ASCORBIC ACID"]
	effects[EffectCellViability] = clamp01(1.0 - totalActive*0.1)
	effects[EffectCellProliferation] = saturating(totalActive, 0.5)

	antioxidant := conc["ASCORBIC ACID"] + conc["TOCOPHEROL"]
	effects[EffectAntioxidantCapacity] = saturating(antioxidant, 3.0)

	return effects
}

// Tissue scores skin-layer responses: per-ingredient penetration and overall
// barrier function from lipid/humectant content.
func Tissue(conc map[string]float64) Effects {
	effects := make(Effects)

	for name, c := range conc {
		effects[name+"_penetration"] = saturating(c, 0.1)
	}

	barrier := conc["CERAMIDES"] + conc["CHOLESTEROL"] + conc["HYALURONIC ACID"]
	effects[EffectBarrierFunction] = saturating(barrier, 2.0)

	return effects
}

// Organ scores whole-skin responses: hydration, elasticity, brightness and
// the irritation risk driven by exfoliating actives.
func Organ(conc map[string]float64) Effects {
	effects := make(Effects)

	beneficial := conc["NIACINAMIDE"] + conc["HYALURONIC ACID"] + conc["ASCORBIC ACID"]
	effects[EffectSkinHydration] = saturating(beneficial, 0.8)
	effects[EffectSkinElasticity] = saturating(conc["RETINOL"], 5.0)
	effects[EffectSkinBrightness] = saturating(conc["ASCORBIC ACID"], 3.0)

	irritating := conc["RETINOL"] + conc["GLYCOLIC ACID"]
	effects[EffectIrritationRisk] = saturating(irritating, 2.0)

	return effects
}

// Predict merges all four scale models into one effect map, in the fixed
// order molecular → cellular → tissue → organ. On a key collision the last
// writer in call order wins.
func Predict(conc map[string]float64) Effects {
	merged := make(Effects)
	for _, scale := range []func(map[string]float64) Effects{Molecular, Cellular, Tissue, Organ} {
		for name, score := range scale(conc) {
			merged[name] = score
		}
	}
	return merged
}
