// Package runner drives change-set processing with parallel execution.
package runner

import (
	"context"
	"runtime"
	"sync"

	"github.com/smartpr/fmtgate/internal/config"
	"github.com/smartpr/fmtgate/internal/model"
	"github.com/smartpr/fmtgate/internal/output"
	"github.com/smartpr/fmtgate/internal/report"
)

// Processor handles one changed file and returns its outcome. The second
// result is false when the file has no registered handler.
type Processor interface {
	Process(ctx context.Context, file model.ChangedFile) (model.Outcome, bool)
}

// Options configures a run.
type Options struct {
	// Sequential disables the worker pool; files run one at a time in
	// change-set order.
	Sequential bool

	// Jobs is the worker count. Zero or negative means one worker per CPU.
	// Values above config.MaxJobs are clamped.
	Jobs int
}

// Runner processes changed files through a Processor and collects outcomes
// into a report. Failures never stop the run: every file gets its outcome,
// and the gate decides at the end.
type Runner struct {
	proc Processor
	out  *output.Writer
}

// New creates a Runner that reports per-file progress on out.
func New(proc Processor, out *output.Writer) *Runner {
	return &Runner{proc: proc, out: out}
}

// Run processes all files and returns the finalized report.
//
// Canceling ctx stops new files from starting; files already in flight run
// to completion so none is left half-formatted.
func (r *Runner) Run(ctx context.Context, files []model.ChangedFile, opts Options) *report.Report {
	rep := report.New()

	if opts.Sequential {
		r.runSequential(ctx, files, rep)
	} else {
		r.runParallel(ctx, files, rep, workerCount(opts.Jobs))
	}

	rep.Finalize()
	return rep
}

func (r *Runner) runSequential(ctx context.Context, files []model.ChangedFile, rep *report.Report) {
	for _, f := range files {
		if ctx.Err() != nil {
			return
		}
		r.processOne(ctx, f, rep)
	}
}

// runParallel uses a channel-as-semaphore pattern for bounded concurrency:
// channel capacity limits concurrent goroutines. Each worker acquires a slot
// before executing and releases it when done.
func (r *Runner) runParallel(ctx context.Context, files []model.ChangedFile, rep *report.Report, workers int) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for _, f := range files {
		wg.Add(1)
		go func(f model.ChangedFile) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case sem <- struct{}{}:
			}
			defer func() { <-sem }()

			// The select can win the semaphore slot even when ctx is
			// already done, so check again before starting the file.
			if ctx.Err() != nil {
				return
			}
			r.processOne(ctx, f, rep)
		}(f)
	}

	wg.Wait()
}

func (r *Runner) processOne(ctx context.Context, f model.ChangedFile, rep *report.Report) {
	outcome, ok := r.proc.Process(ctx, f)
	if !ok {
		return
	}
	rep.Add(outcome)

	switch outcome.Status {
	case model.StatusFormatted:
		r.out.FileFormatted(f.Path)
	case model.StatusUnchanged:
		r.out.FileUnchanged(f.Path)
	case model.StatusError:
		r.out.FileFailed(f.Path, outcome.Message)
	}
}

// workerCount resolves the effective worker count. Always at least 1 to
// prevent blocking on semaphore acquisition, even if runtime.NumCPU()
// misreports in a restricted container.
func workerCount(jobs int) int {
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}
	if jobs < 1 {
		jobs = 1
	}
	if jobs > config.MaxJobs {
		jobs = config.MaxJobs
	}
	return jobs
}
