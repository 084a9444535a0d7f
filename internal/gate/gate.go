// Package gate turns an aggregated report into a pipeline verdict.
package gate

import (
	"github.com/smartpr/fmtgate/internal/errors"
	"github.com/smartpr/fmtgate/internal/report"
)

// Result is the pipeline verdict.
type Result int

const (
	// Pass means every processed file ended formatted or unchanged.
	// An empty change set also passes.
	Pass Result = iota
	// Fail means at least one file ended in error.
	Fail
)

// Decide computes the verdict from a finalized report. Formatted files are
// a success, not a failure: the gate rejects broken formatter runs, not
// unformatted code.
func Decide(r *report.Report) Result {
	if r.Totals().Errors > 0 {
		return Fail
	}
	return Pass
}

// ExitCode maps the verdict to the process exit code.
func (r Result) ExitCode() int {
	if r == Fail {
		return errors.ExitFail
	}
	return errors.ExitPass
}

func (r Result) String() string {
	if r == Fail {
		return "fail"
	}
	return "pass"
}
