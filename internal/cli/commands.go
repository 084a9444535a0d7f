package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/smartpr/fmtgate/internal/apply"
	"github.com/smartpr/fmtgate/internal/changeset"
	"github.com/smartpr/fmtgate/internal/config"
	"github.com/smartpr/fmtgate/internal/errors"
	"github.com/smartpr/fmtgate/internal/gate"
	"github.com/smartpr/fmtgate/internal/registry"
	"github.com/smartpr/fmtgate/internal/report"
	"github.com/smartpr/fmtgate/internal/runner"
	"github.com/smartpr/fmtgate/internal/schema"
)

// runOptions holds flags specific to the run command.
type runOptions struct {
	Target     string
	Source     string
	JUnitPath  string
	JSONPath   string
	Jobs       int
	Sequential bool
}

func parseRunFlags(args []string) (*runOptions, error) {
	opts := &runOptions{}

	i := 0
	for i < len(args) {
		arg := args[i]

		value := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", arg)
			}
			return args[i+1], nil
		}

		switch arg {
		case "--target":
			v, err := value()
			if err != nil {
				return nil, err
			}
			opts.Target = v
			i += 2
		case "--source":
			v, err := value()
			if err != nil {
				return nil, err
			}
			opts.Source = v
			i += 2
		case "--junit":
			v, err := value()
			if err != nil {
				return nil, err
			}
			opts.JUnitPath = v
			i += 2
		case "--json":
			v, err := value()
			if err != nil {
				return nil, err
			}
			opts.JSONPath = v
			i += 2
		case "--jobs":
			v, err := value()
			if err != nil {
				return nil, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > config.MaxJobs {
				return nil, fmt.Errorf("invalid --jobs value %q (want 1-%d)", v, config.MaxJobs)
			}
			opts.Jobs = n
			i += 2
		case "--sequential":
			opts.Sequential = true
			i++
		default:
			return nil, fmt.Errorf("unknown run flag %q", arg)
		}
	}

	return opts, nil
}

// loadConfig resolves and loads the effective configuration. Discovery
// walks up from the working directory; no config file means built-in
// defaults, not an error.
func loadConfig(opts *GlobalOptions) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		located, err := config.Locate(opts.Dir)
		if err != nil {
			return nil, errors.Configf("locate config: %v", err)
		}
		path = located
	}
	if path == "" {
		return config.Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Configf("read %s: %v", path, err)
	}
	if err := schema.ValidateConfig(data); err != nil {
		return nil, errors.Configf("%s: %v", path, err)
	}

	cfg, warnings, err := config.Parse(data)
	for _, w := range warnings {
		out.WarningSimple("%s: %s", path, w)
	}
	if err != nil {
		return nil, errors.Configf("%s: %v", path, err)
	}
	return cfg, nil
}

func cmdRun(args []string, gopts *GlobalOptions) int {
	ropts, err := parseRunFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	cfg, err := loadConfig(gopts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	for _, w := range config.ApplyEnv(cfg) {
		out.WarningSimple("%s", w)
	}

	reg, err := registry.NewRegistry(cfg)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	if err := changeset.EnsureGit(); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	target, source := changeset.DefaultRefs(ropts.Target, ropts.Source)
	out.Info("resolving changes %s...%s", target, source)

	resolver := changeset.NewResolver(gopts.Dir, changeset.NewGitRunner())
	files, err := resolver.Resolve(ctx, target, source)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	jobs := ropts.Jobs
	if jobs == 0 {
		jobs = cfg.Jobs
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	executor := apply.NewExecutor(reg, apply.NewToolRunner(), gopts.Dir, timeout)
	rep := runner.New(executor, out).Run(ctx, files, runner.Options{
		Sequential: ropts.Sequential,
		Jobs:       jobs,
	})

	if code := writeReports(rep, cfg, ropts); code != errors.ExitPass {
		return code
	}

	printSummary(rep)

	if ctx.Err() != nil {
		out.ErrorPrefix("interrupted")
		return errors.ExitEnvironmentError
	}

	verdict := gate.Decide(rep)
	if verdict == gate.Fail {
		out.FinalFailure("formatting gate failed")
	} else {
		out.FinalSuccess("formatting gate passed")
	}
	return verdict.ExitCode()
}

// writeReports renders both artifacts. Report paths come from flags first,
// then config, then defaults.
func writeReports(rep *report.Report, cfg *config.Config, ropts *runOptions) int {
	junitPath := config.DefaultJUnitPath
	jsonPath := config.DefaultJSONPath
	if cfg.Reports != nil {
		if cfg.Reports.JUnit != "" {
			junitPath = cfg.Reports.JUnit
		}
		if cfg.Reports.JSON != "" {
			jsonPath = cfg.Reports.JSON
		}
	}
	if ropts.JUnitPath != "" {
		junitPath = ropts.JUnitPath
	}
	if ropts.JSONPath != "" {
		jsonPath = ropts.JSONPath
	}

	if err := rep.WriteJUnit(junitPath); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitEnvironmentError
	}
	if err := rep.WriteJSON(jsonPath); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitEnvironmentError
	}
	return errors.ExitPass
}

func printSummary(rep *report.Report) {
	t := rep.Totals()

	out.SummaryHeader("Summary")
	out.SummaryItem("Files", strconv.Itoa(t.Total))
	out.SummaryItem("Formatted", strconv.Itoa(t.Formatted))
	out.SummaryItem("Unchanged", strconv.Itoa(t.Unchanged))
	if t.Errors > 0 {
		out.SummaryFailed("Errors", strconv.Itoa(t.Errors))
	} else {
		out.SummaryItem("Errors", "0")
	}

	if rate, ok := rep.SuccessRate(); ok {
		out.SummaryItem("Success rate", fmt.Sprintf("%.1f%%", rate*100))
	} else {
		out.SummaryItem("Success rate", "n/a")
	}

	failed := rep.Failed()
	if len(failed) > 0 {
		out.SummarySectionLabel("Failed files")
		for _, o := range failed {
			out.SummaryFailed(o.File.Path, o.Message)
		}
	}
}

func cmdFormatters(gopts *GlobalOptions) int {
	cfg, err := loadConfig(gopts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	reg, err := registry.NewRegistry(cfg)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	caser := cases.Title(language.English)
	var rows [][]string
	for _, class := range reg.Classes() {
		chain, _ := reg.Lookup(class)
		title := caser.String(strings.ReplaceAll(string(class), "_", " "))
		for i, spec := range chain {
			name, display := "", ""
			if i == 0 {
				name = string(class)
				display = title
			}
			kind := "format"
			if spec.Check {
				kind = "check"
			}
			rows = append(rows, []string{name, display, kind, spec.String()})
		}
	}

	out.Table([]string{"Class", "Title", "Kind", "Command"}, rows)
	return errors.ExitPass
}

func cmdConfig(args []string, gopts *GlobalOptions) int {
	sub := "validate"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "validate":
		cfg, err := loadConfig(gopts)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.GetExitCode(err)
		}
		if _, err := registry.NewRegistry(cfg); err != nil {
			out.ErrorPrefix("%v", err)
			return errors.ExitConfigError
		}
		out.Success("configuration valid")
		return errors.ExitPass

	case "show":
		cfg, err := loadConfig(gopts)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.GetExitCode(err)
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			out.ErrorPrefix("%v", err)
			return errors.ExitConfigError
		}
		out.Println("%s", data)
		return errors.ExitPass

	default:
		out.ErrorPrefix("unknown config subcommand %q (want validate or show)", sub)
		return errors.ExitConfigError
	}
}
