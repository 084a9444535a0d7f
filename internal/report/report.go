// Package report aggregates per-file outcomes and renders them as CI
// artifacts. A Report is safe for concurrent Add calls; Finalize freezes it
// before any totals or artifacts are read.
package report

import (
	"sync"

	"github.com/smartpr/fmtgate/internal/model"
)

// Totals are the aggregate counters over all recorded outcomes.
type Totals struct {
	Total     int
	Formatted int
	Unchanged int
	Errors    int
}

// Report collects outcomes from concurrent workers.
type Report struct {
	mu        sync.Mutex
	outcomes  []model.Outcome
	finalized bool
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// Add records one outcome. Panics if called after Finalize; that would mean
// a worker outlived the collection phase, which is a bug.
func (r *Report) Add(outcome model.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finalized {
		panic("report: Add after Finalize")
	}
	r.outcomes = append(r.outcomes, outcome)
}

// Finalize freezes the report. Idempotent.
func (r *Report) Finalize() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finalized = true
}

// Totals computes the aggregate counters.
func (r *Report) Totals() Totals {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := Totals{Total: len(r.outcomes)}
	for _, o := range r.outcomes {
		switch o.Status {
		case model.StatusFormatted:
			t.Formatted++
		case model.StatusUnchanged:
			t.Unchanged++
		case model.StatusError:
			t.Errors++
		}
	}
	return t
}

// Outcomes returns a copy of all recorded outcomes in recording order.
func (r *Report) Outcomes() []model.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Outcome, len(r.outcomes))
	copy(out, r.outcomes)
	return out
}

// Failed returns the outcomes with error status, in recording order.
func (r *Report) Failed() []model.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	var failed []model.Outcome
	for _, o := range r.outcomes {
		if o.Status == model.StatusError {
			failed = append(failed, o)
		}
	}
	return failed
}

// SuccessRate returns the fraction of files processed without error.
// The second result is false when no files were processed, in which case
// the rate is undefined rather than 100%.
func (r *Report) SuccessRate() (float64, bool) {
	t := r.Totals()
	if t.Total == 0 {
		return 0, false
	}
	return float64(t.Total-t.Errors) / float64(t.Total), true
}
