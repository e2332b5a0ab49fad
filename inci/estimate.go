package inci

import "github.com/ReZonArc/ocskn/ingredient"

// Rank-tier constants for positional concentration estimation.
// The first listed ingredient dominates the formula; later ranks fall off in
// fixed steps with a slow-decaying tail beyond rank 10.
const (
	firstRankWater = 60.0 // rank 0 when the lead ingredient is water
	firstRankOther = 30.0 // rank 0 otherwise
	secondRank     = 15.0 // rank 1
	thirdRank      = 8.0  // rank 2
	tailFloor      = 0.1  // minimum estimate for deep-tail ranks
)

// Estimate converts an ordered ingredient list (descending-concentration
// convention) into estimated percentage concentrations.
//
// Each rank maps to a fixed tier; every value is clamped to the ingredient's
// regulatory ceiling for opts.Jurisdiction, if one is recorded. When the
// running total exceeds 100%, all values are rescaled so the total equals
// opts.Headroom.
//
// Contracts:
//   - Deterministic and side-effect-free; identical input ⇒ identical output.
//   - Output order matches input order; names are canonicalized.
//
// Errors: ErrEmptyList, ErrBlankIngredient.
//
// Complexity: O(n) time, O(n) space.
func Estimate(names []string, opt ...Option) ([]Estimated, error) {
	if len(names) == 0 {
		return nil, ErrEmptyList
	}

	opts := DefaultOptions()
	for _, o := range opt {
		o(&opts)
	}

	out := make([]Estimated, 0, len(names))
	total := 0.0

	var (
		rank int
		name string
	)
	for rank, name = range names {
		canonical := ingredient.Canonical(name)
		if canonical == "" {
			return nil, ErrBlankIngredient
		}

		conc := tierFor(rank, canonical)

		// Clamp to the known regulatory ceiling, if any.
		if ceiling, ok := ingredient.CeilingFor(canonical, opts.Jurisdiction); ok && conc > ceiling {
			conc = ceiling
		}

		out = append(out, Estimated{Name: canonical, Percent: conc})
		total += conc
	}

	// Rescale when the raw tiers overshoot a full formula; the headroom gap
	// accounts for unlisted trace ingredients.
	if total > 100.0 {
		factor := opts.Headroom / total
		for i := range out {
			out[i].Percent *= factor
		}
	}

	return out, nil
}

// tierFor returns the raw positional estimate for the given rank.
func tierFor(rank int, canonical string) float64 {
	switch {
	case rank == 0:
		if canonical == "AQUA" || canonical == "WATER" {
			return firstRankWater
		}
		return firstRankOther
	case rank == 1:
		return secondRank
	case rank == 2:
		return thirdRank
	case rank < 5:
		return 5.0 - float64(rank-3)*1.0
	case rank < 10:
		return 2.0 - float64(rank-5)*0.3
	default:
		conc := 1.0 - float64(rank-10)*0.1
		if conc < tailFloor {
			return tailFloor
		}
		return conc
	}
}

// EstimateAbsolute converts an ordered ingredient list into absolute masses
// (grams) for a batch of the given total mass, assuming unit density.
//
// Errors: ErrBadBatchSize plus everything Estimate returns.
//
// Complexity: O(n).
func EstimateAbsolute(names []string, batchGrams float64, opt ...Option) (map[string]float64, error) {
	if batchGrams <= 0 {
		return nil, ErrBadBatchSize
	}

	relative, err := Estimate(names, opt...)
	if err != nil {
		return nil, err
	}

	absolute := make(map[string]float64, len(relative))
	for _, e := range relative {
		absolute[e.Name] = e.Percent / 100.0 * batchGrams
	}

	return absolute, nil
}
