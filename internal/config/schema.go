// Package config provides configuration loading and validation for fmtgate.json.
package config

// Config represents the complete fmtgate.json configuration.
type Config struct {
	TimeoutSeconds int                        `json:"timeout_seconds,omitempty"`
	Jobs           int                        `json:"jobs,omitempty"`
	Reports        *ReportsConfig             `json:"reports,omitempty"`
	Formatters     map[string][]CommandConfig `json:"formatters,omitempty"`
}

// ReportsConfig configures the report artifact paths.
type ReportsConfig struct {
	JUnit string `json:"junit,omitempty"`
	JSON  string `json:"json,omitempty"`
}

// CommandConfig defines one formatter or linter invocation in a chain.
// Commands run in declared order; a Check command must succeed but is not
// expected to rewrite the file.
type CommandConfig struct {
	Tool  string   `json:"tool"`
	Args  []string `json:"args,omitempty"`
	Check bool     `json:"check,omitempty"`
}
