// Package fmtgate provides public constants for pipeline scripts and
// external tools integrating with fmtgate.
package fmtgate

// Exit codes returned by the fmtgate CLI.
// These constants allow pipeline scripts to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitPass indicates every processed file was formatted or unchanged.
	ExitPass = 0

	// ExitFail indicates at least one file's formatter chain failed.
	ExitFail = 1

	// ExitConfigError indicates a configuration error (invalid fmtgate.json,
	// bad flags, schema violation).
	ExitConfigError = 2

	// ExitEnvError indicates an environment error (git unavailable,
	// unresolvable refs, unwritable report path).
	ExitEnvError = 3
)
