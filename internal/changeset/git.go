package changeset

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/smartpr/fmtgate/internal/errors"
)

// GitRunner executes git commands. The indirection lets the resolver be
// tested without a git binary or a real repository.
type GitRunner interface {
	// Run executes git with the given arguments in dir and returns stdout.
	Run(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// execGitRunner runs the real git binary via subprocess.
type execGitRunner struct{}

// NewGitRunner returns a GitRunner backed by the git executable.
func NewGitRunner() GitRunner {
	return &execGitRunner{}
}

func (execGitRunner) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
		}
		return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return stdout.Bytes(), nil
}

// EnsureGit verifies that the git executable is available.
func EnsureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return errors.Environmentf("git executable not found in PATH: %v", err)
	}
	return nil
}
