// Package integration contains end-to-end tests for fmtgate.
package integration

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
// The result is cached for efficiency since runtime.Caller is relatively expensive.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

// requireGit skips the test when no git binary is available.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// git runs a git command in dir and fails the test on error.
func git(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(cmd.Environ(),
		"GIT_AUTHOR_NAME=test",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=test",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}
