// Package apply runs formatter command chains against single files with
// backup and rollback. Every file moves through the same lifecycle: backup,
// apply each command in order, verify, then restore on failure or discard
// the backup on success. A failure in one file never leaves partial edits
// behind and never affects any other file.
package apply

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	gateerrors "github.com/smartpr/fmtgate/internal/errors"
	"github.com/smartpr/fmtgate/internal/model"
	"github.com/smartpr/fmtgate/internal/registry"
)

// outputTailLimit bounds how much tool output is folded into an error
// message. Formatters can dump whole files on a parse error.
const outputTailLimit = 500

// Executor applies formatter chains to changed files.
type Executor struct {
	registry *registry.Registry
	runner   ToolRunner
	dir      string
	timeout  time.Duration
}

// NewExecutor creates an executor. dir is the repository root every command
// runs in; timeout bounds each individual command invocation.
func NewExecutor(reg *registry.Registry, runner ToolRunner, dir string, timeout time.Duration) *Executor {
	return &Executor{registry: reg, runner: runner, dir: dir, timeout: timeout}
}

// Process runs the command chain for one file and returns its outcome.
// The second result is false when no chain is registered for the file's
// class; such files are skipped, not failed.
//
// On any command failure the file is restored from its backup before the
// outcome is returned, so the working tree never holds a half-formatted file.
// Failures are classified: a failing or timed-out command is a
// KindExecution error, a failing backup or restore is KindBackup.
func (e *Executor) Process(ctx context.Context, file model.ChangedFile) (model.Outcome, bool) {
	chain, ok := e.registry.Lookup(file.Class)
	if !ok {
		return model.Outcome{}, false
	}

	start := time.Now()
	outcome := func(status model.Status, message string) (model.Outcome, bool) {
		return model.Outcome{
			File:     file,
			Status:   status,
			Message:  message,
			Duration: time.Since(start),
		}, true
	}
	failed := func(gerr *gateerrors.GateError) (model.Outcome, bool) {
		return outcome(model.StatusError, failureMessage(gerr))
	}

	bkp, err := newBackup(filepath.Join(e.dir, file.Path))
	if err != nil {
		return failed(gateerrors.Backup(file.Path, err.Error(), err))
	}
	defer bkp.Close()

	for _, spec := range chain {
		if gerr := e.runCommand(ctx, spec, file.Path); gerr != nil {
			if rerr := bkp.Restore(); rerr != nil {
				msg := fmt.Sprintf("%v (after: %s)", rerr, failureMessage(gerr))
				return failed(gateerrors.Backup(file.Path, msg, rerr))
			}
			return failed(gerr)
		}
	}

	changed, err := bkp.Changed()
	if err != nil {
		// A "successful" chain can still leave the file unreadable, e.g.
		// a formatter that renamed it away. Put the backup bytes back
		// before reporting.
		if rerr := bkp.Restore(); rerr != nil {
			err = fmt.Errorf("%v; restore failed: %v", err, rerr)
		}
		return failed(gateerrors.Backup(file.Path, err.Error(), err))
	}
	if changed {
		return outcome(model.StatusFormatted, "")
	}
	return outcome(model.StatusUnchanged, "")
}

// runCommand executes one command of the chain and returns a KindExecution
// error on failure.
func (e *Executor) runCommand(ctx context.Context, spec registry.CommandSpec, path string) *gateerrors.GateError {
	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	output, err := e.runner.Run(cctx, e.dir, spec.Tool, registry.BuildArgs(spec, path))
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(cctx.Err(), context.DeadlineExceeded):
		return gateerrors.Execution(path, spec.Tool, fmt.Sprintf("timed out after %s", e.timeout))
	case errors.Is(cctx.Err(), context.Canceled):
		return gateerrors.Execution(path, spec.Tool, "canceled")
	}

	msg := err.Error()
	if tail := outputTail(output); tail != "" {
		msg += ": " + tail
	}
	return gateerrors.Execution(path, spec.Tool, msg)
}

// failureMessage renders a per-file error for the report. The file identity
// travels separately in the outcome, so the message names only the command
// and the diagnosis.
func failureMessage(ge *gateerrors.GateError) string {
	if ge.Command != "" {
		return ge.Command + ": " + ge.Message
	}
	return ge.Message
}

// outputTail returns the trimmed end of tool output, where formatters put
// the actionable part of their diagnostics.
func outputTail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > outputTailLimit {
		s = "..." + s[len(s)-outputTailLimit:]
	}
	return s
}
