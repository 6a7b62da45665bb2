package sessions

import (
	"context"
	"sync"

	"github.com/reusee/bfi/bfconfigs"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/reports"
	"github.com/reusee/bfi/syncs"
)

// RunBatch runs independent jobs concurrently, one machine each.
// Results are in job order.
type RunBatch func(ctx context.Context, jobs []Job) []Result

func (Module) RunBatch(
	session Session,
	parallel bfconfigs.Parallel,
	logger logs.Logger,
) RunBatch {
	return func(ctx context.Context, jobs []Job) []Result {
		results := make([]Result, len(jobs))
		sem := syncs.NewSemaphore(int(parallel))
		wg := new(sync.WaitGroup)

		for i, job := range jobs {
			if err := sem.AcquireContext(ctx); err != nil {
				results[i] = canceled(job, err)
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()
				results[i] = session.Run(ctx, job)
			}()
		}
		wg.Wait()

		logger.DebugContext(ctx, "batch done",
			"jobs", len(jobs),
			"parallel", parallel,
		)
		return results
	}
}

func canceled(job Job, err error) Result {
	return Result{
		Job:      job,
		Err:      err,
		Snapshot: reports.Failed(job.Name, err),
	}
}
