// Package evolve_test - runnable documentation examples.
package evolve_test

import (
	"errors"
	"fmt"

	"github.com/ReZonArc/ocskn/bioscale"
	"github.com/ReZonArc/ocskn/evolve"
)

// ExampleOptimizer_Optimize runs a short unconstrained search over a
// three-ingredient pool toward a hydration target.
func ExampleOptimizer_Optimize() {
	p := evolve.DefaultParams()
	p.PopulationSize = 10
	p.MaxGenerations = 10
	p.EliteCount = 2
	p.ConvergenceWindow = 5
	p.Seed = 42

	opt, err := evolve.New(p, nil)
	if err != nil {
		fmt.Println("new:", err)
		return
	}

	res, err := opt.Optimize(
		[]string{"AQUA", "GLYCERIN", "NIACINAMIDE"},
		nil,
		map[string]float64{bioscale.EffectSkinHydration: 0.8},
	)
	if err != nil {
		fmt.Println("optimize:", err)
		return
	}

	fmt.Println("pool size:", res.PoolSize)
	fmt.Println("population:", res.FinalPopulation)
	fmt.Println("best satisfied:", res.Best.Satisfied)
	// Output:
	// pool size: 3
	// population: 10
	// best satisfied: true
}

// ExampleOptimizer_Optimize_emptyPool shows the input contract: the
// viable pool must be non-empty.
func ExampleOptimizer_Optimize_emptyPool() {
	opt, _ := evolve.New(evolve.DefaultParams(), nil)
	_, err := opt.Optimize(nil, nil, nil)
	fmt.Println(errors.Is(err, evolve.ErrEmptyPool))
	// Output:
	// true
}
