package ingredient

import "strings"

// FunctionTag is the closed set of ingredient roles used for dispatch.
// Matching a tag replaces any substring inspection of free-form type names.
type FunctionTag int

const (
	// TagActive marks pharmacologically active ingredients (retinoids, acids).
	TagActive FunctionTag = iota

	// TagHumectant marks water-binding moisturizers.
	TagHumectant

	// TagEmulsifier marks oil/water phase stabilizers.
	TagEmulsifier

	// TagPreservative marks antimicrobial preservation systems.
	TagPreservative

	// TagThickener marks rheology modifiers.
	TagThickener

	// TagEmollient marks occlusive/softening lipids.
	TagEmollient

	// TagAntioxidant marks oxidation inhibitors.
	TagAntioxidant

	// TagSolvent marks carrier phases (water, glycerin).
	TagSolvent

	// TagOther marks ingredients outside the closed role set.
	TagOther
)

// String returns the lowercase role name of the tag.
func (t FunctionTag) String() string {
	switch t {
	case TagActive:
		return "active"
	case TagHumectant:
		return "humectant"
	case TagEmulsifier:
		return "emulsifier"
	case TagPreservative:
		return "preservative"
	case TagThickener:
		return "thickener"
	case TagEmollient:
		return "emollient"
	case TagAntioxidant:
		return "antioxidant"
	case TagSolvent:
		return "solvent"
	default:
		return "other"
	}
}

// Jurisdiction selects which regulatory ceiling set applies.
type Jurisdiction int

const (
	// EU applies the European Union annex limits.
	EU Jurisdiction = iota

	// FDA applies the United States limits.
	FDA

	// International applies the harmonized fallback set.
	International
)

// String returns the short jurisdiction code.
func (j Jurisdiction) String() string {
	switch j {
	case EU:
		return "EU"
	case FDA:
		return "FDA"
	default:
		return "INTERNATIONAL"
	}
}

// Record describes one ingredient of the fixed knowledge table.
type Record struct {
	// INCIName is the canonical upper-case INCI identifier.
	INCIName string

	// CommonName is the informal trade/common name.
	CommonName string

	// Tags is the closed-set role list (never empty; TagOther at minimum).
	Tags []FunctionTag

	// Ceiling maps a jurisdiction to the maximum allowed concentration in
	// percent. A missing key means no known limit for that jurisdiction.
	Ceiling map[Jurisdiction]float64

	// IncompatibleWith lists ingredients this one must not be co-formulated
	// with (symmetric; stored on both records).
	IncompatibleWith []string

	// SynergisticWith lists ingredients with documented positive interaction
	// (symmetric; stored on both records).
	SynergisticWith []string

	// UnitCost is the relative cost per percent of mass. Zero means the cost
	// model carries no data for this ingredient.
	UnitCost float64

	// Natural reports membership in the fixed natural-origin allow-list.
	Natural bool
}

// HasTag reports whether the record carries the given function tag.
func (r Record) HasTag(tag FunctionTag) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Canonical normalizes an INCI identifier for table lookup:
// surrounding whitespace is trimmed and the name is upper-cased.
func Canonical(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
