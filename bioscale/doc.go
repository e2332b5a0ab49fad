// Package bioscale models biological effects of a formulation at four
// aggregation scales: molecular, cellular, tissue and organ.
//
// Every scale is an independent, stateless pure function from a
// concentration mapping (ingredient → percent) to named effect scores. All
// responses are fixed saturating-linear formulas clipped to [0, 1]: a
// per-effect multiplier times concentration, capped at full response.
//
// Predict merges the four scales into one effect map in the fixed call order
// molecular → cellular → tissue → organ. Keys are scale- or
// ingredient-qualified, so collisions are not expected; should an extension
// ever introduce overlapping keys, the last writer in call order wins.
//
// There are no errors: an empty or unknown concentration map simply produces
// baseline (zero-response) effects.
//
// Complexity: O(n) per scale over the concentration map size.
package bioscale
