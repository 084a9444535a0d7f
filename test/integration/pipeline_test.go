package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/smartpr/fmtgate/internal/apply"
	"github.com/smartpr/fmtgate/internal/changeset"
	"github.com/smartpr/fmtgate/internal/config"
	"github.com/smartpr/fmtgate/internal/gate"
	"github.com/smartpr/fmtgate/internal/model"
	"github.com/smartpr/fmtgate/internal/output"
	"github.com/smartpr/fmtgate/internal/registry"
	"github.com/smartpr/fmtgate/internal/runner"
	"github.com/smartpr/fmtgate/internal/testing/mocks"
)

// setupRepo creates a git repository with two commits. The second commit
// changes main.py and style.css and adds notes.txt.
func setupRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	git(t, dir, "init", "-q")
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	write("main.py", "x=1\n")
	write("style.css", "a{color:red}\n")
	git(t, dir, "add", ".")
	git(t, dir, "commit", "-q", "-m", "base")

	write("main.py", "x=1\ny=2\n")
	write("style.css", "a{color:blue}\n")
	write("notes.txt", "notes\n")
	git(t, dir, "add", ".")
	git(t, dir, "commit", "-q", "-m", "change")

	return dir
}

func TestPipelineEndToEnd(t *testing.T) {
	requireGit(t)
	dir := setupRepo(t)

	resolver := changeset.NewResolver(dir, changeset.NewGitRunner())
	files, err := resolver.Resolve(context.Background(), "HEAD~1", "HEAD")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// notes.txt is unsupported and must already be filtered out.
	if len(files) != 2 {
		t.Fatalf("expected 2 changed files, got %v", files)
	}

	cfg := config.Default()
	cfg.Formatters = map[string][]config.CommandConfig{
		"python": {{Tool: "black", Args: []string{"--quiet"}}},
		"css":    {{Tool: "prettier", Args: []string{"--write"}}},
	}
	reg, err := registry.NewRegistry(cfg)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	// black reformats, prettier leaves the file alone.
	tools := mocks.NewToolRunner().
		On("black", func(_ context.Context, dir string, args []string) (string, error) {
			path := filepath.Join(dir, args[len(args)-1])
			return "", os.WriteFile(path, []byte("x = 1\ny = 2\n"), 0o644)
		}).
		On("prettier", func(_ context.Context, _ string, _ []string) (string, error) {
			return "", nil
		})

	var buf bytes.Buffer
	out := output.NewWithWriters(&buf, &buf, false)
	executor := apply.NewExecutor(reg, tools, dir, 30*time.Second)
	rep := runner.New(executor, out).Run(context.Background(), files, runner.Options{Sequential: true})

	totals := rep.Totals()
	if totals.Total != 2 || totals.Formatted != 1 || totals.Unchanged != 1 || totals.Errors != 0 {
		t.Errorf("unexpected totals %+v", totals)
	}
	if verdict := gate.Decide(rep); verdict != gate.Pass {
		t.Errorf("expected pass, got %v", verdict)
	}

	// Both artifacts land on disk and agree with the report.
	junitPath := filepath.Join(dir, "fmtgate-report.xml")
	jsonPath := filepath.Join(dir, "formatted_files.json")
	if err := rep.WriteJUnit(junitPath); err != nil {
		t.Fatalf("WriteJUnit failed: %v", err)
	}
	if err := rep.WriteJSON(jsonPath); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	xmlData, err := os.ReadFile(junitPath)
	if err != nil {
		t.Fatalf("read junit artifact: %v", err)
	}
	if !strings.Contains(string(xmlData), `name="main.py"`) {
		t.Errorf("junit artifact missing testcase for main.py:\n%s", xmlData)
	}

	jsonData, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read json artifact: %v", err)
	}
	var entries []struct {
		File    string `json:"file"`
		Status  string `json:"status"`
		Changes bool   `json:"changes"`
	}
	if err := json.Unmarshal(jsonData, &entries); err != nil {
		t.Fatalf("parse json artifact: %v", err)
	}
	byFile := make(map[string]string)
	for _, e := range entries {
		byFile[e.File] = e.Status
	}
	if byFile["main.py"] != "formatted" {
		t.Errorf("main.py status = %q, want formatted", byFile["main.py"])
	}
	if byFile["style.css"] != "no_changes" {
		t.Errorf("style.css status = %q, want no_changes", byFile["style.css"])
	}

	// The reformatted file is really on disk.
	data, err := os.ReadFile(filepath.Join(dir, "main.py"))
	if err != nil {
		t.Fatalf("read main.py: %v", err)
	}
	if string(data) != "x = 1\ny = 2\n" {
		t.Errorf("main.py not rewritten, got %q", data)
	}
}

func TestPipelineFailureRollsBackAndFailsGate(t *testing.T) {
	requireGit(t)
	dir := setupRepo(t)

	resolver := changeset.NewResolver(dir, changeset.NewGitRunner())
	files, err := resolver.Resolve(context.Background(), "HEAD~1", "HEAD")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	original, err := os.ReadFile(filepath.Join(dir, "main.py"))
	if err != nil {
		t.Fatalf("read main.py: %v", err)
	}

	reg, err := registry.NewRegistry(nil)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	// black mangles the file and then reports failure; prettier chains pass.
	tools := mocks.NewToolRunner().
		On("black", func(_ context.Context, dir string, args []string) (string, error) {
			path := filepath.Join(dir, args[len(args)-1])
			_ = os.WriteFile(path, []byte("mangled"), 0o644)
			return "error: cannot format main.py", os.ErrInvalid
		}).
		On("isort", func(_ context.Context, _ string, _ []string) (string, error) {
			return "", nil
		}).
		On("prettier", func(_ context.Context, _ string, _ []string) (string, error) {
			return "", nil
		}).
		On("stylelint", func(_ context.Context, _ string, _ []string) (string, error) {
			return "", nil
		})

	var buf bytes.Buffer
	out := output.NewWithWriters(&buf, &buf, false)
	executor := apply.NewExecutor(reg, tools, dir, 30*time.Second)
	rep := runner.New(executor, out).Run(context.Background(), files, runner.Options{Sequential: true})

	if verdict := gate.Decide(rep); verdict != gate.Fail {
		t.Errorf("expected fail, got %v", verdict)
	}
	if verdict := gate.Decide(rep); verdict.ExitCode() != 1 {
		t.Errorf("expected exit code 1, got %d", verdict.ExitCode())
	}

	failed := rep.Failed()
	if len(failed) != 1 || failed[0].File.Path != "main.py" {
		t.Fatalf("expected main.py to fail, got %v", failed)
	}
	if failed[0].File.Class != model.ClassPython {
		t.Errorf("unexpected class %q", failed[0].File.Class)
	}

	// The mangled write must have been rolled back.
	after, err := os.ReadFile(filepath.Join(dir, "main.py"))
	if err != nil {
		t.Fatalf("read main.py: %v", err)
	}
	if string(after) != string(original) {
		t.Errorf("main.py not restored after failure, got %q", after)
	}
}

func TestPipelineUnresolvableRef(t *testing.T) {
	requireGit(t)
	dir := setupRepo(t)

	resolver := changeset.NewResolver(dir, changeset.NewGitRunner())
	if _, err := resolver.Resolve(context.Background(), "origin/unknowable", "HEAD"); err == nil {
		t.Error("expected error for unresolvable target ref")
	}
}
