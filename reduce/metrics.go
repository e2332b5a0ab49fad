package reduce

// Metrics tracks running averages over successive reduction runs.
// Zero value is ready to use. Not safe for concurrent use.
type Metrics struct {
	TotalSearches          int
	AverageReductionFactor float64
	ComplianceSuccessRate  float64
}

// Update folds one reduction outcome into the running averages.
func (m *Metrics) Update(reductionFactor float64, compliancePassed bool) {
	m.TotalSearches++
	weight := 1.0 / float64(m.TotalSearches)

	m.AverageReductionFactor = (1-weight)*m.AverageReductionFactor + weight*reductionFactor

	success := 0.0
	if compliancePassed {
		success = 1.0
	}
	m.ComplianceSuccessRate = (1-weight)*m.ComplianceSuccessRate + weight*success
}
