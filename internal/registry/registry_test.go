package registry

import (
	"reflect"
	"testing"

	"github.com/smartpr/fmtgate/internal/config"
	"github.com/smartpr/fmtgate/internal/model"
)

func TestNewRegistry_Defaults(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("NewRegistry(nil) error = %v", err)
	}

	for _, class := range model.Classes() {
		chain, ok := r.Lookup(class)
		if !ok {
			t.Errorf("default registry missing class %q", class)
			continue
		}
		if len(chain) == 0 {
			t.Errorf("default chain for %q is empty", class)
		}
	}
}

func TestNewRegistry_Override(t *testing.T) {
	cfg := &config.Config{
		Formatters: map[string][]config.CommandConfig{
			"python": {
				{Tool: "ruff", Args: []string{"format"}},
				{Tool: "ruff", Args: []string{"check"}, Check: true},
			},
		},
	}

	r, err := NewRegistry(cfg)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	chain, ok := r.Lookup(model.ClassPython)
	if !ok {
		t.Fatal("python chain missing after override")
	}
	if len(chain) != 2 || chain[0].Tool != "ruff" || !chain[1].Check {
		t.Errorf("override not applied: %+v", chain)
	}

	// Other classes keep their defaults.
	if _, ok := r.Lookup(model.ClassCSS); !ok {
		t.Error("css default chain should survive a python-only override")
	}
}

func TestNewRegistry_OrderPreserved(t *testing.T) {
	cfg := &config.Config{
		Formatters: map[string][]config.CommandConfig{
			"css": {
				{Tool: "c"},
				{Tool: "a"},
				{Tool: "b"},
			},
		},
	}

	r, err := NewRegistry(cfg)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	chain, _ := r.Lookup(model.ClassCSS)
	var tools []string
	for _, spec := range chain {
		tools = append(tools, spec.Tool)
	}
	if !reflect.DeepEqual(tools, []string{"c", "a", "b"}) {
		t.Errorf("chain order = %v, want declared order [c a b]", tools)
	}
}

func TestNewRegistry_EmptyChainDisablesClass(t *testing.T) {
	cfg := &config.Config{
		Formatters: map[string][]config.CommandConfig{
			"json_yaml": {},
		},
	}

	r, err := NewRegistry(cfg)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if _, ok := r.Lookup(model.ClassJSONYAML); ok {
		t.Error("empty configured chain should disable the class")
	}
}

func TestLookup_UnsupportedIsMiss(t *testing.T) {
	r, _ := NewRegistry(nil)

	if _, ok := r.Lookup(model.ClassUnsupported); ok {
		t.Error("Lookup(unsupported) should be a miss, not an error")
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	r, _ := NewRegistry(nil)

	chain, _ := r.Lookup(model.ClassPython)
	chain[0].Tool = "mutated"

	again, _ := r.Lookup(model.ClassPython)
	if again[0].Tool == "mutated" {
		t.Error("Lookup must return a copy, not the internal slice")
	}
}

func TestClasses_CanonicalOrder(t *testing.T) {
	r, _ := NewRegistry(nil)

	got := r.Classes()
	want := model.Classes()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classes() = %v, want %v", got, want)
	}
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		spec CommandSpec
		want []string
	}{
		{
			name: "path appended",
			spec: CommandSpec{Tool: "black", Args: []string{"--quiet"}},
			want: []string{"--quiet", "a.py"},
		},
		{
			name: "placeholder replaced",
			spec: CommandSpec{Tool: "eslint", Args: []string{"--fix", "{file}"}},
			want: []string{"--fix", "a.py"},
		},
		{
			name: "placeholder inside argument",
			spec: CommandSpec{Tool: "tool", Args: []string{"--input={file}"}},
			want: []string{"--input=a.py"},
		},
		{
			name: "no args",
			spec: CommandSpec{Tool: "fmt"},
			want: []string{"a.py"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildArgs(tt.spec, "a.py")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandSpec_String(t *testing.T) {
	spec := CommandSpec{Tool: "prettier", Args: []string{"--write", "--log-level", "error"}}
	if got := spec.String(); got != "prettier --write --log-level error" {
		t.Errorf("String() = %q", got)
	}

	bare := CommandSpec{Tool: "isort"}
	if got := bare.String(); got != "isort" {
		t.Errorf("String() = %q", got)
	}
}
