package sim

import (
	"context"
	"sync"

	"github.com/san-kum/springlab/internal/dynamo"
)

// SweepCase is one independent simulation instance in a parameter
// sweep: its own system, initial state, and fresh integrator. Instances
// share nothing, so the sweep runs them concurrently.
type SweepCase struct {
	Label string
	Sys   dynamo.System
	X0    dynamo.State
	Integ dynamo.Integrator
}

// Sweep runs every case to completion in parallel and returns results
// in case order. The first error encountered is returned alongside
// whatever results completed.
func Sweep(ctx context.Context, cases []SweepCase, cfg dynamo.Config) ([]*dynamo.Result, error) {
	results := make([]*dynamo.Result, len(cases))
	errs := make([]error, len(cases))

	var wg sync.WaitGroup
	for i, c := range cases {
		wg.Add(1)
		go func(idx int, c SweepCase) {
			defer wg.Done()
			results[idx], errs[idx] = New(c.Sys, c.Integ).Run(ctx, c.X0, cfg)
		}(i, c)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
