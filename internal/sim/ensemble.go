package sim

import (
	"context"
	"sync"

	"github.com/san-kum/radsim/internal/dynamo"
)

// Job is one independent run. Jobs must not share integrators or metrics.
type Job struct {
	Sim    *Simulator
	X0     dynamo.State
	Config dynamo.Config
}

// RunAll runs jobs concurrently and returns their results in job order.
// If any run fails, the first error in job order is returned along with
// every result that was produced.
func RunAll(ctx context.Context, jobs []Job) ([]*dynamo.Result, error) {
	results := make([]*dynamo.Result, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(idx int, job Job) {
			defer wg.Done()
			results[idx], errs[idx] = job.Sim.Run(ctx, job.X0, job.Config)
		}(i, job)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
