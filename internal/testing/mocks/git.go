// Package mocks provides shared test doubles for fmtgate packages.
package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// GitRunner implements changeset.GitRunner for testing.
// Responses are keyed by the joined argument string; unmatched commands
// fail unless a DefaultOutput is set.
type GitRunner struct {
	mu        sync.Mutex
	responses map[string]gitResponse
	calls     []string

	// DefaultOutput is returned for commands without a registered response.
	// When nil, unmatched commands return an error.
	DefaultOutput []byte
}

type gitResponse struct {
	output []byte
	err    error
}

// NewGitRunner creates a new mock git runner.
func NewGitRunner() *GitRunner {
	return &GitRunner{responses: make(map[string]gitResponse)}
}

// Respond registers an output for a git command line (joined arguments).
func (m *GitRunner) Respond(argLine string, output []byte) *GitRunner {
	m.responses[argLine] = gitResponse{output: output}
	return m
}

// Fail registers an error for a git command line.
func (m *GitRunner) Fail(argLine string, err error) *GitRunner {
	m.responses[argLine] = gitResponse{err: err}
	return m
}

// Run implements changeset.GitRunner.
func (m *GitRunner) Run(_ context.Context, _ string, args ...string) ([]byte, error) {
	line := strings.Join(args, " ")

	m.mu.Lock()
	m.calls = append(m.calls, line)
	resp, ok := m.responses[line]
	m.mu.Unlock()

	if !ok {
		if m.DefaultOutput != nil {
			return m.DefaultOutput, nil
		}
		return nil, fmt.Errorf("unexpected git command: git %s", line)
	}
	return resp.output, resp.err
}

// Calls returns the recorded command lines in invocation order.
func (m *GitRunner) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
