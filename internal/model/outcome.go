// Package model provides shared data types used across multiple internal packages.
// This package exists to break import cycles between packages like changeset,
// exec, and report that need to share type definitions.
package model

import "time"

// ChangedFile is a single file path selected by the change-set resolver,
// together with its extension class. Immutable after creation.
type ChangedFile struct {
	Path  string
	Class Class
}

// Status is the terminal status of processing one changed file.
type Status string

const (
	// StatusFormatted means the formatter chain succeeded and rewrote the file.
	StatusFormatted Status = "formatted"
	// StatusUnchanged means the formatter chain succeeded without modifying the file.
	StatusUnchanged Status = "unchanged"
	// StatusError means a command in the chain failed and the file was restored.
	StatusError Status = "error"
)

// Outcome records the result of processing one changed file.
// Exactly one Outcome exists per processed ChangedFile.
type Outcome struct {
	File     ChangedFile
	Status   Status
	Message  string // empty unless Status is StatusError
	Duration time.Duration
}
