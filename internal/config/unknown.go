package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// LoadWithWarnings parses config data and returns any unknown field warnings.
func LoadWithWarnings(data []byte) (*Config, []string, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Detect unknown fields
	warnings := detectUnknownFields(data)

	return &cfg, warnings, nil
}

// detectUnknownFields compares raw JSON with known struct fields.
// Note: Since this is called after successful Config parsing, a parse failure
// here would indicate an unexpected internal inconsistency.
func detectUnknownFields(data []byte) []string {
	var warnings []string

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// This should never happen since the data was already parsed successfully.
		// Return a warning so the condition is visible rather than silently ignored.
		return []string{"internal: failed to re-parse config for unknown field detection"}
	}

	knownTopLevel := getJSONFields(reflect.TypeOf(Config{}))
	for key := range raw {
		if key == "$schema" {
			continue // $schema is explicitly allowed and ignored
		}
		if !knownTopLevel[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q at root level (ignored)", key))
		}
	}

	if reportsRaw, ok := raw["reports"]; ok {
		warnings = append(warnings, checkObjectUnknownFields(reportsRaw, reflect.TypeOf(ReportsConfig{}), "reports")...)
	}

	if formattersRaw, ok := raw["formatters"]; ok {
		warnings = append(warnings, checkFormattersUnknownFields(formattersRaw)...)
	}

	return warnings
}

func checkFormattersUnknownFields(data json.RawMessage) []string {
	var warnings []string

	var chains map[string][]json.RawMessage
	if err := json.Unmarshal(data, &chains); err != nil {
		// Should not happen since Config.Formatters parsed successfully.
		return []string{"internal: failed to re-parse formatters for unknown field detection"}
	}

	for class, chain := range chains {
		for i, cmdRaw := range chain {
			field := fmt.Sprintf("formatters.%s[%d]", class, i)
			warnings = append(warnings, checkObjectUnknownFields(cmdRaw, reflect.TypeOf(CommandConfig{}), field)...)
		}
	}

	return warnings
}

func checkObjectUnknownFields(data json.RawMessage, typ reflect.Type, field string) []string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	known := getJSONFields(typ)
	var warnings []string
	for key := range fields {
		if !known[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q in %s (ignored)", key, field))
		}
	}
	return warnings
}

// getJSONFields returns a map of known JSON field names for a struct type.
func getJSONFields(typ reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		fields[name] = true
	}
	return fields
}
