package inci

import "github.com/ReZonArc/ocskn/ingredient"

// Report is the outcome of a compliance validation pass.
type Report struct {
	Compliant  bool
	Violations []Violation
}

// Validate checks a concentration list against the ceiling limits of one
// jurisdiction. One Violation is emitted per ingredient whose concentration
// exceeds its jurisdiction-specific ceiling; an ingredient with no recorded
// ceiling is not checked.
//
// Pure function: no side effects, no mutation of list, idempotent — the same
// input yields the identical report on every call.
//
// Complexity: O(n) time, O(v) space for v violations.
func Validate(list []Estimated, j ingredient.Jurisdiction) Report {
	report := Report{Compliant: true}

	for _, e := range list {
		ceiling, ok := ingredient.CeilingFor(e.Name, j)
		if !ok {
			continue // no ceiling entry means no check
		}
		if e.Percent > ceiling {
			report.Compliant = false
			report.Violations = append(report.Violations, Violation{
				Ingredient: ingredient.Canonical(e.Name),
				Percent:    e.Percent,
				Ceiling:    ceiling,
			})
		}
	}

	return report
}
