// Package errors provides structured error types and exit codes for fmtgate.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the fmtgate CLI.
const (
	ExitPass             = 0 // Gate passed (error_count == 0)
	ExitFail             = 1 // Gate failed or runtime error
	ExitConfigError      = 2 // Configuration error (invalid config, validation failure)
	ExitEnvironmentError = 3 // Environment error (git missing, unresolvable revision)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindValidation
	// KindRevision means a revision reference could not be resolved. This is
	// fatal: no change set can be computed, so the run aborts before any file
	// is processed.
	KindRevision
	// KindExecution means a registered formatter command failed or timed out.
	// Isolated to its file; triggers rollback and is recorded in the report.
	KindExecution
	// KindBackup means the backup or restore of a file failed. Fatal for that
	// file only, surfaced distinctly so it is not mistaken for a formatter
	// failure.
	KindBackup
	KindEnvironment
)

// GateError is the base error type for fmtgate.
type GateError struct {
	Kind    ErrorKind
	Message string
	File    string // File path if applicable
	Command string // Formatter command if applicable
	Cause   error  // Underlying error
}

func (e *GateError) Error() string {
	if e.File != "" && e.Command != "" {
		return fmt.Sprintf("[%s] %s: %s", e.File, e.Command, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("[%s] %s", e.File, e.Message)
	}
	return e.Message
}

func (e *GateError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *GateError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindRevision, KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitFail
	}
}

// Config creates a new configuration error.
func Config(message string) *GateError {
	return &GateError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *GateError {
	return Config(fmt.Sprintf(format, args...))
}

// Environment creates a new environment error.
func Environment(message string) *GateError {
	return &GateError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *GateError {
	return Environment(fmt.Sprintf(format, args...))
}

// Revision creates an error for an unresolvable revision reference.
func Revision(ref string, cause error) *GateError {
	return &GateError{
		Kind:    KindRevision,
		Message: fmt.Sprintf("cannot resolve revision %q", ref),
		Cause:   cause,
	}
}

// Execution creates an error for a failed formatter command on a file.
func Execution(file, command, message string) *GateError {
	return &GateError{
		Kind:    KindExecution,
		File:    file,
		Command: command,
		Message: message,
	}
}

// Backup creates an error for a failed backup or restore on a file.
// The message is prefixed so report consumers can tell it apart from a
// formatter's own failure.
func Backup(file, message string, cause error) *GateError {
	return &GateError{
		Kind:    KindBackup,
		File:    file,
		Message: "backup/restore: " + message,
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *GateError {
	return &GateError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// IsKind reports whether err is or wraps a GateError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ge *GateError
	if errors.As(err, &ge) {
		return ge.Kind == kind
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitPass
	}
	var ge *GateError
	if errors.As(err, &ge) {
		return ge.ExitCode()
	}
	return ExitFail
}
