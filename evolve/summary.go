// Package evolve - summary.go
// Cross-run aggregation for long-lived optimizers.
package evolve

import "time"

// Summary aggregates the runs completed by one Optimizer.
type Summary struct {
	// TotalRuns is the number of completed Optimize calls.
	TotalRuns int
	// LastBestFitness is the best fitness of the most recent run.
	LastBestFitness float64
	// ConvergenceRate is the fraction of runs in [0, 1] that stopped on the
	// variance rule rather than the generation cap.
	ConvergenceRate float64
	// AverageGenerations is the mean evaluated generation count per run.
	AverageGenerations float64
	// AverageElapsed is the mean wall-clock duration per run.
	AverageElapsed time.Duration
}

// Summary reports aggregate statistics over every run completed so far.
// The zero Summary is returned before the first run.
func (o *Optimizer) Summary() Summary {
	n := len(o.runs)
	if n == 0 {
		return Summary{}
	}
	var (
		converged  int
		gens       int
		elapsedSum time.Duration
	)
	for _, r := range o.runs {
		if r.converged {
			converged++
		}
		gens += r.generations
		elapsedSum += r.elapsed
	}
	return Summary{
		TotalRuns:          n,
		LastBestFitness:    o.runs[n-1].best,
		ConvergenceRate:    float64(converged) / float64(n),
		AverageGenerations: float64(gens) / float64(n),
		AverageElapsed:     elapsedSum / time.Duration(n),
	}
}
