package apply

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// ToolRunner abstracts formatter invocation so tests can substitute
// canned results for real binaries. Run returns the combined stdout and
// stderr of the tool.
type ToolRunner interface {
	Run(ctx context.Context, dir, tool string, args []string) (string, error)
}

type execToolRunner struct{}

// NewToolRunner returns a ToolRunner backed by os/exec.
func NewToolRunner() ToolRunner {
	return execToolRunner{}
}

func (execToolRunner) Run(ctx context.Context, dir, tool string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	return buf.String(), err
}
