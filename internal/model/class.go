package model

import (
	"path/filepath"
	"strings"
)

// Class is the extension class of a changed file. It selects which
// formatter chain applies to the file.
type Class string

const (
	ClassPython      Class = "python"
	ClassJSTS        Class = "js_ts"
	ClassJSONYAML    Class = "json_yaml"
	ClassCSS         Class = "css"
	ClassUnsupported Class = "unsupported"
)

// extensionClasses maps file extensions to their class.
// First match wins; extensions are matched case-insensitively.
var extensionClasses = []struct {
	Ext   string
	Class Class
}{
	// Python
	{".py", ClassPython},
	{".pyi", ClassPython},
	// JavaScript/TypeScript
	{".js", ClassJSTS},
	{".jsx", ClassJSTS},
	{".ts", ClassJSTS},
	{".tsx", ClassJSTS},
	{".mjs", ClassJSTS},
	{".cjs", ClassJSTS},
	// Data files
	{".json", ClassJSONYAML},
	{".yaml", ClassJSONYAML},
	{".yml", ClassJSONYAML},
	// Stylesheets
	{".css", ClassCSS},
	{".scss", ClassCSS},
	{".less", ClassCSS},
}

// Classify returns the extension class for a file path.
// Paths without a recognized extension are ClassUnsupported.
func Classify(path string) Class {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return ClassUnsupported
	}
	for _, entry := range extensionClasses {
		if entry.Ext == ext {
			return entry.Class
		}
	}
	return ClassUnsupported
}

// Classes returns all supported extension classes in declaration order.
func Classes() []Class {
	return []Class{ClassPython, ClassJSTS, ClassJSONYAML, ClassCSS}
}

// ParseClass converts a string to a Class.
// Returns false for unknown or unsupported class names.
func ParseClass(s string) (Class, bool) {
	for _, c := range Classes() {
		if string(c) == s {
			return c, true
		}
	}
	return ClassUnsupported, false
}
