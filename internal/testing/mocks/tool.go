package mocks

import (
	"context"
	"fmt"
	"sync"
)

// ToolFunc simulates one external formatter invocation.
type ToolFunc func(ctx context.Context, dir string, args []string) (string, error)

// ToolRunner implements apply.ToolRunner for testing.
// Behavior is keyed by tool name so a test can make "black" rewrite the file
// while "flake8" fails, without spawning processes.
type ToolRunner struct {
	mu    sync.Mutex
	tools map[string]ToolFunc
	calls []string
}

// NewToolRunner creates a new mock tool runner.
func NewToolRunner() *ToolRunner {
	return &ToolRunner{tools: make(map[string]ToolFunc)}
}

// On registers the behavior for a tool name.
func (m *ToolRunner) On(tool string, fn ToolFunc) *ToolRunner {
	m.tools[tool] = fn
	return m
}

// Run implements apply.ToolRunner.
func (m *ToolRunner) Run(ctx context.Context, dir, tool string, args []string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, tool)
	fn, ok := m.tools[tool]
	m.mu.Unlock()

	if !ok {
		return "", fmt.Errorf("no mock behavior for tool %q", tool)
	}
	return fn(ctx, dir, args)
}

// Calls returns the tool names in invocation order.
func (m *ToolRunner) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
