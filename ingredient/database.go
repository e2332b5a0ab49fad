package ingredient

import "sort"

// records is the fixed knowledge table, keyed by canonical INCI name.
// Ceilings and relations mirror the EU annex excerpt this engine is bounded
// to; UnitCost carries data only for ingredients the cost model knows.
var records = map[string]*Record{
	"AQUA": {
		INCIName:   "AQUA",
		CommonName: "Water",
		Tags:       []FunctionTag{TagSolvent},
		Ceiling:    map[Jurisdiction]float64{EU: 95.0, FDA: 95.0},
		UnitCost:   0.01,
	},
	"WATER": {
		INCIName:   "WATER",
		CommonName: "Water",
		Tags:       []FunctionTag{TagSolvent},
		Ceiling:    map[Jurisdiction]float64{EU: 95.0, FDA: 95.0},
		UnitCost:   0.01,
	},
	"GLYCERIN": {
		INCIName:   "GLYCERIN",
		CommonName: "Glycerol",
		Tags:       []FunctionTag{TagHumectant, TagSolvent},
		Ceiling:    map[Jurisdiction]float64{EU: 20.0, FDA: 20.0},
		UnitCost:   0.05,
		Natural:    true,
	},
	"NIACINAMIDE": {
		INCIName:   "NIACINAMIDE",
		CommonName: "Nicotinamide",
		Tags:       []FunctionTag{TagActive, TagAntioxidant},
		Ceiling:    map[Jurisdiction]float64{EU: 10.0, FDA: 10.0},
		UnitCost:   2.0,
	},
	"HYALURONIC ACID": {
		INCIName:   "HYALURONIC ACID",
		CommonName: "Hyaluronan",
		Tags:       []FunctionTag{TagHumectant, TagActive},
		UnitCost:   20.0,
		Natural:    true,
	},
	"SODIUM HYALURONATE": {
		INCIName:   "SODIUM HYALURONATE",
		CommonName: "Hyaluronic acid sodium salt",
		Tags:       []FunctionTag{TagHumectant, TagActive},
		Natural:    true,
	},
	"RETINOL": {
		INCIName:   "RETINOL",
		CommonName: "Vitamin A",
		Tags:       []FunctionTag{TagActive},
		Ceiling:    map[Jurisdiction]float64{EU: 1.0, FDA: 1.0},
		UnitCost:   50.0,
	},
	"ASCORBIC ACID": {
		INCIName:   "ASCORBIC ACID",
		CommonName: "Vitamin C",
		Tags:       []FunctionTag{TagAntioxidant, TagActive},
		Ceiling:    map[Jurisdiction]float64{EU: 20.0, FDA: 20.0},
		UnitCost:   5.0,
	},
	"TOCOPHEROL": {
		INCIName:   "TOCOPHEROL",
		CommonName: "Vitamin E",
		Tags:       []FunctionTag{TagAntioxidant, TagPreservative},
		Natural:    true,
	},
	"PHENOXYETHANOL": {
		INCIName:   "PHENOXYETHANOL",
		CommonName: "Phenoxyethanol",
		Tags:       []FunctionTag{TagPreservative},
		Ceiling:    map[Jurisdiction]float64{EU: 1.0},
	},
	"METHYLPARABEN": {
		INCIName:   "METHYLPARABEN",
		CommonName: "Methylparaben",
		Tags:       []FunctionTag{TagPreservative},
		Ceiling:    map[Jurisdiction]float64{EU: 0.4},
	},
	"PROPYLPARABEN": {
		INCIName:   "PROPYLPARABEN",
		CommonName: "Propylparaben",
		Tags:       []FunctionTag{TagPreservative},
		Ceiling:    map[Jurisdiction]float64{EU: 0.14},
	},
	"SODIUM HYDROXIDE": {
		INCIName:   "SODIUM HYDROXIDE",
		CommonName: "Lye",
		Tags:       []FunctionTag{TagOther},
		Ceiling:    map[Jurisdiction]float64{EU: 11.0},
	},
	"LACTIC ACID": {
		INCIName:   "LACTIC ACID",
		CommonName: "Lactic acid",
		Tags:       []FunctionTag{TagActive},
		Ceiling:    map[Jurisdiction]float64{EU: 10.0},
	},
	"GLYCOLIC ACID": {
		INCIName:   "GLYCOLIC ACID",
		CommonName: "Glycolic acid",
		Tags:       []FunctionTag{TagActive},
		Ceiling:    map[Jurisdiction]float64{EU: 10.0},
	},
	"SALICYLIC ACID": {
		INCIName:   "SALICYLIC ACID",
		CommonName: "Salicylic acid",
		Tags:       []FunctionTag{TagActive},
		Ceiling:    map[Jurisdiction]float64{EU: 2.0},
	},
	"BENZOYL PEROXIDE": {
		INCIName:   "BENZOYL PEROXIDE",
		CommonName: "Benzoyl peroxide",
		Tags:       []FunctionTag{TagActive},
		Ceiling:    map[Jurisdiction]float64{EU: 10.0},
	},
	"HYDROQUINONE": {
		INCIName:   "HYDROQUINONE",
		CommonName: "Hydroquinone",
		Tags:       []FunctionTag{TagActive},
		Ceiling:    map[Jurisdiction]float64{EU: 2.0},
	},
	"CETYL ALCOHOL": {
		INCIName:   "CETYL ALCOHOL",
		CommonName: "Cetyl alcohol",
		Tags:       []FunctionTag{TagEmulsifier, TagThickener},
	},
	"STEARYL ALCOHOL": {
		INCIName:   "STEARYL ALCOHOL",
		CommonName: "Stearyl alcohol",
		Tags:       []FunctionTag{TagEmulsifier, TagThickener},
	},
	"POLYSORBATE 60": {
		INCIName:   "POLYSORBATE 60",
		CommonName: "Polysorbate 60",
		Tags:       []FunctionTag{TagEmulsifier},
	},
	"CARBOMER": {
		INCIName:   "CARBOMER",
		CommonName: "Carbomer",
		Tags:       []FunctionTag{TagThickener},
	},
	"CERAMIDES": {
		INCIName:   "CERAMIDES",
		CommonName: "Ceramide blend",
		Tags:       []FunctionTag{TagEmollient},
	},
	"CHOLESTEROL": {
		INCIName:   "CHOLESTEROL",
		CommonName: "Cholesterol",
		Tags:       []FunctionTag{TagEmollient},
	},
	"ZINC OXIDE": {
		INCIName:   "ZINC OXIDE",
		CommonName: "Zinc oxide",
		Tags:       []FunctionTag{TagOther},
	},
}

// incompatiblePairs is the symmetric exclusion relation. Each pair is stored
// once here and wired onto both records at init time.
var incompatiblePairs = [][2]string{
	{"ASCORBIC ACID", "RETINOL"},    // pH incompatibility
	{"ASCORBIC ACID", "NIACINAMIDE"}, // potential irritation
	{"RETINOL", "BENZOYL PEROXIDE"},  // degradation
	{"GLYCOLIC ACID", "RETINOL"},     // over-exfoliation
}

// synergisticPairs is the symmetric positive-interaction relation.
var synergisticPairs = [][2]string{
	{"ASCORBIC ACID", "TOCOPHEROL"},   // antioxidant network
	{"HYALURONIC ACID", "GLYCERIN"},   // enhanced hydration
	{"NIACINAMIDE", "ZINC OXIDE"},     // oil control + soothing
}

// sortedNames caches the deterministic iteration order of the table.
var sortedNames []string

func init() {
	for _, pair := range incompatiblePairs {
		if a, ok := records[pair[0]]; ok {
			a.IncompatibleWith = append(a.IncompatibleWith, pair[1])
		}
		if b, ok := records[pair[1]]; ok {
			b.IncompatibleWith = append(b.IncompatibleWith, pair[0])
		}
	}
	for _, pair := range synergisticPairs {
		if a, ok := records[pair[0]]; ok {
			a.SynergisticWith = append(a.SynergisticWith, pair[1])
		}
		if b, ok := records[pair[1]]; ok {
			b.SynergisticWith = append(b.SynergisticWith, pair[0])
		}
	}

	sortedNames = make([]string, 0, len(records))
	for name := range records {
		sortedNames = append(sortedNames, name)
	}
	sort.Strings(sortedNames)
}

// Lookup returns a copy of the record for name (case-insensitive).
// The second result reports whether the ingredient is known.
// The returned copy owns fresh slices; mutating it never touches the table.
func Lookup(name string) (Record, bool) {
	r, ok := records[Canonical(name)]
	if !ok {
		return Record{}, false
	}

	out := *r
	out.Tags = append([]FunctionTag(nil), r.Tags...)
	out.IncompatibleWith = append([]string(nil), r.IncompatibleWith...)
	out.SynergisticWith = append([]string(nil), r.SynergisticWith...)
	out.Ceiling = make(map[Jurisdiction]float64, len(r.Ceiling))
	for j, c := range r.Ceiling {
		out.Ceiling[j] = c
	}

	return out, true
}

// Names returns every known INCI name in sorted order.
// The slice is a fresh copy each call.
func Names() []string {
	return append([]string(nil), sortedNames...)
}

// DatabaseSize reports the number of ingredients in the fixed table.
func DatabaseSize() int { return len(records) }

// CeilingFor returns the regulatory ceiling (in percent) for name under the
// given jurisdiction. ok is false when no limit is recorded — absence of a
// ceiling means "no check", never zero.
func CeilingFor(name string, j Jurisdiction) (float64, bool) {
	r, found := records[Canonical(name)]
	if !found {
		return 0, false
	}
	c, ok := r.Ceiling[j]
	return c, ok
}

// Incompatible reports whether a and b are recorded as mutually exclusive.
// The relation is symmetric; unknown ingredients are never incompatible.
func Incompatible(a, b string) bool {
	r, ok := records[Canonical(a)]
	if !ok {
		return false
	}
	cb := Canonical(b)
	for _, other := range r.IncompatibleWith {
		if other == cb {
			return true
		}
	}
	return false
}

// Synergistic reports whether a and b carry a documented positive
// interaction. Symmetric; unknown ingredients are never synergistic.
func Synergistic(a, b string) bool {
	r, ok := records[Canonical(a)]
	if !ok {
		return false
	}
	cb := Canonical(b)
	for _, other := range r.SynergisticWith {
		if other == cb {
			return true
		}
	}
	return false
}

// UnitCost returns the relative cost per percent of mass, or 0 when the cost
// model carries no data for name.
func UnitCost(name string) float64 {
	if r, ok := records[Canonical(name)]; ok {
		return r.UnitCost
	}
	return 0
}

// IsNatural reports membership in the fixed natural-origin allow-list.
func IsNatural(name string) bool {
	if r, ok := records[Canonical(name)]; ok {
		return r.Natural
	}
	return false
}

// HasTag reports whether the named ingredient carries tag.
// Unknown ingredients carry no tags.
func HasTag(name string, tag FunctionTag) bool {
	if r, ok := records[Canonical(name)]; ok {
		return r.HasTag(tag)
	}
	return false
}
