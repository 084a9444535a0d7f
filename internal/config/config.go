package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the config file name written by scaffolding.
const DefaultFileName = "fmtgate.json"

// Config file names searched for by Locate, in priority order.
var configFileNames = []string{DefaultFileName, ".fmtgate.json"}

// LoadAndValidate reads a config file, applies defaults, validates, and returns warnings.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses config bytes, applies defaults, validates, and returns
// warnings. Callers that already hold the file contents (e.g. for schema
// validation) use this to avoid a second read.
func Parse(data []byte) (*Config, []string, error) {
	cfg, unknownWarnings, err := LoadWithWarnings(data)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)

	validationWarnings, err := Validate(cfg)

	// Combine warnings from both sources.
	allWarnings := make([]string, 0, len(unknownWarnings)+len(validationWarnings))
	allWarnings = append(allWarnings, unknownWarnings...)
	allWarnings = append(allWarnings, validationWarnings...)

	if err != nil {
		return nil, allWarnings, err
	}

	return cfg, allWarnings, nil
}

// Locate searches for a config file in startDir and its parent directories.
// Returns the empty string (and nil error) when no config file exists;
// callers fall back to the built-in defaults in that case.
func Locate(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// Default returns a configuration with all defaults applied and no
// per-class overrides.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
