// Package registry maps extension classes to ordered formatter command chains.
package registry

import (
	"strings"

	"github.com/smartpr/fmtgate/internal/config"
	"github.com/smartpr/fmtgate/internal/model"
)

// filePlaceholder in a command argument is replaced by the file path.
// When no argument contains it, the path is appended as the last argument.
const filePlaceholder = "{file}"

// CommandSpec is one formatter or linter invocation in a chain.
type CommandSpec struct {
	Tool  string
	Args  []string
	Check bool // Lint-only pass: must succeed, not expected to rewrite
}

// String returns the command as it would appear on a shell line.
func (s CommandSpec) String() string {
	if len(s.Args) == 0 {
		return s.Tool
	}
	return s.Tool + " " + strings.Join(s.Args, " ")
}

// Registry holds the per-class formatter chains.
// Chain order is the declared order and is never reordered: a content-mutating
// formatter pass may be required to run before its lint-check pass.
type Registry struct {
	chains map[model.Class][]CommandSpec
}

// NewRegistry creates a registry from configuration. A nil config or a config
// without a formatters section yields the built-in default chains. Classes
// present in the config replace the default chain for that class; an empty
// configured chain disables the class.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	chains := defaultChains()

	if cfg != nil {
		for name, cmds := range cfg.Formatters {
			class, ok := model.ParseClass(name)
			if !ok {
				// Validation rejects unknown classes before we get here.
				return nil, &config.ValidationError{
					Field:   "formatters." + name,
					Message: "unknown extension class",
				}
			}
			chain := make([]CommandSpec, 0, len(cmds))
			for _, c := range cmds {
				chain = append(chain, CommandSpec{Tool: c.Tool, Args: c.Args, Check: c.Check})
			}
			chains[class] = chain
		}
	}

	// Drop disabled classes so Lookup misses cleanly.
	for class, chain := range chains {
		if len(chain) == 0 {
			delete(chains, class)
		}
	}

	return &Registry{chains: chains}, nil
}

// Lookup returns the command chain for a class.
// A miss means "no handler": the file is skipped, not failed.
func (r *Registry) Lookup(class model.Class) ([]CommandSpec, bool) {
	chain, ok := r.chains[class]
	if !ok {
		return nil, false
	}
	out := make([]CommandSpec, len(chain))
	copy(out, chain)
	return out, true
}

// Classes returns the registered classes in the canonical declaration order.
func (r *Registry) Classes() []model.Class {
	var classes []model.Class
	for _, c := range model.Classes() {
		if _, ok := r.chains[c]; ok {
			classes = append(classes, c)
		}
	}
	return classes
}

// BuildArgs expands a command's arguments for a concrete file path.
func BuildArgs(spec CommandSpec, path string) []string {
	args := make([]string, 0, len(spec.Args)+1)
	replaced := false
	for _, a := range spec.Args {
		if strings.Contains(a, filePlaceholder) {
			a = strings.ReplaceAll(a, filePlaceholder, path)
			replaced = true
		}
		args = append(args, a)
	}
	if !replaced {
		args = append(args, path)
	}
	return args
}
