package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables overriding file-based configuration.
const (
	EnvJobs           = "FMTGATE_JOBS"
	EnvTimeoutSeconds = "FMTGATE_TIMEOUT_SECONDS"
)

// ApplyEnv overrides configuration fields from environment variables.
// Invalid values produce a warning and leave the config untouched.
func ApplyEnv(cfg *Config) []string {
	var warnings []string

	if v := os.Getenv(EnvJobs); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxJobs {
			warnings = append(warnings, fmt.Sprintf("invalid %s value %q (want 1-%d), ignoring", EnvJobs, v, MaxJobs))
		} else {
			cfg.Jobs = n
		}
	}

	if v := os.Getenv(EnvTimeoutSeconds); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			warnings = append(warnings, fmt.Sprintf("invalid %s value %q (want a positive integer), ignoring", EnvTimeoutSeconds, v))
		} else {
			cfg.TimeoutSeconds = n
		}
	}

	return warnings
}
