package config

import (
	"fmt"

	"github.com/smartpr/fmtgate/internal/model"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if cfg.TimeoutSeconds < 1 {
		return nil, &ValidationError{
			Field:   "timeout_seconds",
			Message: "must be a positive integer",
		}
	}

	if cfg.Jobs < 0 || cfg.Jobs > MaxJobs {
		return nil, &ValidationError{
			Field:   "jobs",
			Message: fmt.Sprintf("must be between 0 and %d (0 = number of CPUs)", MaxJobs),
		}
	}

	for class, chain := range cfg.Formatters {
		if _, ok := model.ParseClass(class); !ok {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("formatters.%s", class),
				Message: fmt.Sprintf("unknown extension class (known: %v)", model.Classes()),
			}
		}
		if len(chain) == 0 {
			warnings = append(warnings, fmt.Sprintf("formatters.%s: empty command chain disables the class", class))
		}
		for i, cmd := range chain {
			if cmd.Tool == "" {
				return nil, &ValidationError{
					Field:   fmt.Sprintf("formatters.%s[%d].tool", class, i),
					Message: "is required",
				}
			}
		}
	}

	return warnings, nil
}
