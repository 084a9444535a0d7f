// Package cli provides command-line interface functionality for fmtgate.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/smartpr/fmtgate/internal/errors"
	"github.com/smartpr/fmtgate/internal/output"
)

// Version is set at build time.
var Version = "dev"

var out = output.New()

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	// Local overrides for CI variables during development. Missing file is
	// the normal case.
	_ = godotenv.Load()

	if len(args) == 0 {
		printUsage()
		return errors.ExitPass
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return errors.ExitPass
	case "--version", "version":
		fmt.Printf("fmtgate %s\n", Version)
		return errors.ExitPass
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	if len(remaining) == 0 {
		printUsage()
		return errors.ExitPass
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "run":
		return cmdRun(cmdArgs, opts)
	case "formatters":
		return cmdFormatters(opts)
	case "config":
		return cmdConfig(cmdArgs, opts)
	case "init":
		return cmdInit(opts)
	default:
		out.ErrorPrefix("unknown command %q, run 'fmtgate help' for usage", cmd)
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet      bool
	NoColor    bool
	Dir        string // Repository root, default current directory
	ConfigPath string // Explicit config file, overrides discovery
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of the stdlib flag package because flags
// can appear anywhere in the argument list, not just before the command,
// and error messages need usage hints.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{Dir: "."}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			opts.Quiet = true
			i++
		case "--no-color":
			opts.NoColor = true
			i++
		case "-C":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("-C requires a directory")
			}
			opts.Dir = args[i+1]
			i += 2
		case "--config":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--config requires a path")
			}
			opts.ConfigPath = args[i+1]
			i += 2
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	out.SetQuiet(opts.Quiet)
	if opts.NoColor {
		out.SetColor(false)
	}

	return opts, remaining, nil
}

func printUsage() {
	w := output.New()

	w.HelpTitle("fmtgate - change-scoped formatting gate for merge-request pipelines")

	w.HelpSection("Usage:")
	w.HelpUsage("fmtgate <command> [flags]")

	w.HelpSection("Commands:")
	w.HelpCommand("run", "Format changed files and gate the pipeline", 10)
	w.HelpCommand("formatters", "List extension classes and their command chains", 10)
	w.HelpCommand("config", "Validate or show the effective configuration", 10)
	w.HelpCommand("init", "Scaffold fmtgate.json and the CI job file", 10)
	w.HelpCommand("version", "Print version", 10)

	w.HelpSection("Run Flags:")
	w.HelpFlag("--target <ref>", "Diff base ref (default: merge-request target branch)", 20)
	w.HelpFlag("--source <ref>", "Diff head ref (default: pipeline commit)", 20)
	w.HelpFlag("--junit <path>", "JUnit XML report path", 20)
	w.HelpFlag("--json <path>", "JSON report path", 20)
	w.HelpFlag("--jobs <n>", "Worker count (default: number of CPUs)", 20)
	w.HelpFlag("--sequential", "Process files one at a time", 20)

	w.HelpSection("Global Flags:")
	w.HelpFlag("-q, --quiet", "Suppress per-file progress output", 20)
	w.HelpFlag("--no-color", "Disable colored output", 20)
	w.HelpFlag("-C <dir>", "Run as if started in <dir>", 20)
	w.HelpFlag("--config <path>", "Use an explicit config file", 20)

	w.HelpSection("Environment:")
	w.HelpEnvVar("FMTGATE_JOBS", "Worker count override", 24)
	w.HelpEnvVar("FMTGATE_TIMEOUT_SECONDS", "Per-command timeout override", 24)

	w.HelpSection("Examples:")
	w.HelpExample("fmtgate run", "Gate the current merge request")
	w.HelpExample("fmtgate run --target origin/main --source HEAD", "Gate against an explicit base")
	w.HelpExample("fmtgate config validate", "Check fmtgate.json without running")
}
