package model

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Class
	}{
		{"scripts/review_pr.py", ClassPython},
		{"types.pyi", ClassPython},
		{"src/app.js", ClassJSTS},
		{"src/App.tsx", ClassJSTS},
		{"lib/util.mjs", ClassJSTS},
		{"config/settings.json", ClassJSONYAML},
		{".gitlab-ci.yml", ClassJSONYAML},
		{"deploy/values.yaml", ClassJSONYAML},
		{"styles/main.css", ClassCSS},
		{"styles/theme.scss", ClassCSS},
		{"README.md", ClassUnsupported},
		{"Makefile", ClassUnsupported},
		{"bin/tool", ClassUnsupported},
		{"archive.tar.gz", ClassUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Classify(tt.path); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if got := Classify("legacy/OLD_SCRIPT.PY"); got != ClassPython {
		t.Errorf("Classify uppercase extension = %q, want %q", got, ClassPython)
	}
}

func TestParseClass(t *testing.T) {
	for _, c := range Classes() {
		parsed, ok := ParseClass(string(c))
		if !ok || parsed != c {
			t.Errorf("ParseClass(%q) = %q, %v", c, parsed, ok)
		}
	}

	if _, ok := ParseClass("unsupported"); ok {
		t.Error("ParseClass should reject the unsupported pseudo-class")
	}
	if _, ok := ParseClass("rust"); ok {
		t.Error("ParseClass should reject unknown class names")
	}
}

func TestClasses_Order(t *testing.T) {
	classes := Classes()
	want := []Class{ClassPython, ClassJSTS, ClassJSONYAML, ClassCSS}
	if len(classes) != len(want) {
		t.Fatalf("Classes() returned %d classes, want %d", len(classes), len(want))
	}
	for i, c := range want {
		if classes[i] != c {
			t.Errorf("Classes()[%d] = %q, want %q", i, classes[i], c)
		}
	}
}
