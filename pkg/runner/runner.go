package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gofill/internal/logging"
)

// Runner expands descriptors on a pool of workers.
type Runner struct{}

// New creates a Runner.
func New() *Runner {
	return &Runner{}
}

type job struct {
	index      int
	descriptor Descriptor
}

type indexedOutcome struct {
	index   int
	outcome Outcome
}

// Run loads descriptors from opts and expands them concurrently.
// Outcomes are returned in descriptor order regardless of completion order.
// With FailFast, descriptors not yet scheduled after the first failure are
// skipped and the run reports cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	descriptors, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Outcomes: make([]Outcome, 0, len(descriptors)),
	}
	result.Stats.RangesDiscovered = len(descriptors)

	if len(descriptors) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(descriptors))

	logger := logging.FromContext(ctx)
	logger.Debug("expanding ranges", logging.FieldRanges, len(descriptors), logging.FieldJobs, jobs)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workCh := make(chan job)
	outCh := make(chan indexedOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(runCtx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for i, d := range descriptors {
			select {
			case <-runCtx.Done():
				return
			case workCh <- job{index: i, descriptor: d}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make([]*Outcome, len(descriptors))
	for out := range outCh {
		outcomes[out.index] = &out.outcome
		if out.outcome.Error != nil && opts.FailFast {
			cancel()
		}
	}

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	if runCtx.Err() != nil && len(result.Outcomes) < len(descriptors) {
		return result, fmt.Errorf("run stopped after first failure: %w", runCtx.Err())
	}

	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan job, outCh chan<- indexedOutcome, opts Options) {
	for work := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := Outcome{Descriptor: work.descriptor}
		outcome.Result, outcome.Error = Expand(work.descriptor, opts.Fill, opts.MaxLength)
		if outcome.Error != nil {
			rangeCtx := logging.WithFields(ctx,
				logging.FieldLine, work.descriptor.Location(),
				logging.FieldStart, work.descriptor.Start,
				logging.FieldEnd, work.descriptor.End,
			)
			logging.FromContext(rangeCtx).Debug("range failed", logging.FieldError, outcome.Error)
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- indexedOutcome{index: work.index, outcome: outcome}:
		}
	}
}
