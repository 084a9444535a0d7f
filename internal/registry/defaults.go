package registry

import "github.com/smartpr/fmtgate/internal/model"

// defaultChains returns the built-in formatter chains.
// Within each chain the formatting pass comes before any lint-check pass.
func defaultChains() map[model.Class][]CommandSpec {
	return map[model.Class][]CommandSpec{
		model.ClassPython: {
			{Tool: "black", Args: []string{"--quiet"}},
			{Tool: "isort", Args: []string{"--quiet"}},
		},
		model.ClassJSTS: {
			{Tool: "prettier", Args: []string{"--write", "--log-level", "error"}},
			{Tool: "eslint", Args: []string{"--no-eslintrc", "--no-ignore"}, Check: true},
		},
		model.ClassJSONYAML: {
			{Tool: "prettier", Args: []string{"--write", "--log-level", "error"}},
		},
		model.ClassCSS: {
			{Tool: "prettier", Args: []string{"--write", "--log-level", "error"}},
			{Tool: "stylelint", Args: []string{"--allow-empty-input"}, Check: true},
		},
	}
}
