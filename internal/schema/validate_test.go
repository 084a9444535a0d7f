package schema

import (
	"strings"
	"testing"
)

func TestValidateConfig_Valid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty object", `{}`},
		{"schema reference", `{"$schema": "./fmtgate.schema.json"}`},
		{"full config", `{
			"timeout_seconds": 60,
			"jobs": 4,
			"reports": {"junit": "report.xml", "json": "files.json"},
			"formatters": {
				"python": [{"tool": "black", "args": ["--quiet"]}],
				"css": [{"tool": "prettier", "args": ["--write"]}, {"tool": "stylelint", "check": true}]
			}
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateConfig([]byte(tt.data)); err != nil {
				t.Errorf("ValidateConfig() error = %v", err)
			}
		})
	}
}

func TestValidateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"wrong root type", `[]`},
		{"timeout zero", `{"timeout_seconds": 0}`},
		{"timeout wrong type", `{"timeout_seconds": "fast"}`},
		{"jobs over cap", `{"jobs": 1000}`},
		{"unknown formatter class", `{"formatters": {"rust": [{"tool": "rustfmt"}]}}`},
		{"command missing tool", `{"formatters": {"python": [{"args": ["-q"]}]}}`},
		{"empty tool", `{"formatters": {"python": [{"tool": ""}]}}`},
		{"empty junit path", `{"reports": {"junit": ""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateConfig([]byte(tt.data)); err == nil {
				t.Error("ValidateConfig() should fail")
			}
		})
	}
}

func TestValidateConfig_MalformedJSON(t *testing.T) {
	err := ValidateConfig([]byte(`{broken`))
	if err == nil {
		t.Fatal("ValidateConfig() should fail on malformed JSON")
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("error %q should mention invalid JSON", err)
	}
}
