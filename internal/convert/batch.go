package convert

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
)

// Job is one independent conversion in a batch.
type Job struct {
	Raw     []byte
	From    canonical.Format
	To      canonical.Format
	Source  canonical.Source
	Options exporter.Options
}

// JobResult pairs a job with its outcome. Err is set only for hard import
// failures; export problems are already degraded into Result's warnings.
type JobResult struct {
	Job    Job
	Result exporter.Result
	Err    error
}

// Batch converts every job, running up to limit conversions in parallel
// (limit <= 0 means GOMAXPROCS). Conversions are pure and share no state,
// so the only coordination is the worker limit. A failing job records its
// error in its slot and never halts the others; the returned slice is
// aligned with jobs. The error is non-nil only when ctx is canceled.
func (e *Engine) Batch(ctx context.Context, jobs []Job, limit int) ([]JobResult, error) {
	if ctx == nil {
		// cobra's Context() is nil before Execute wires one in.
		ctx = context.Background()
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]JobResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.Convert(job.Raw, job.From, job.To, job.Source, job.Options)
			results[i] = JobResult{Job: job, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
