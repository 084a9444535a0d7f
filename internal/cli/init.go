package cli

import (
	"os"
	"path/filepath"

	"github.com/smartpr/fmtgate/internal/cigen"
	"github.com/smartpr/fmtgate/internal/config"
	"github.com/smartpr/fmtgate/internal/errors"
)

// starterConfig is the scaffolded fmtgate.json. It spells out the defaults
// so a team can see what to tune without reading docs.
const starterConfig = `{
  "timeout_seconds": 120,
  "jobs": 0,
  "reports": {
    "junit": "fmtgate-report.xml",
    "json": "formatted_files.json"
  },
  "formatters": {
    "python": [
      { "tool": "black", "args": ["--quiet"] },
      { "tool": "isort", "args": ["--quiet"] }
    ]
  }
}
`

// cmdInit scaffolds a config file and the GitLab CI include file in the
// working directory. Existing files are never overwritten.
func cmdInit(gopts *GlobalOptions) int {
	configPath := filepath.Join(gopts.Dir, config.DefaultFileName)
	if _, err := os.Stat(configPath); err == nil {
		out.ErrorPrefix("%s already exists", config.DefaultFileName)
		return errors.ExitConfigError
	}

	if err := os.WriteFile(configPath, []byte(starterConfig), 0o644); err != nil {
		out.ErrorPrefix("write %s: %v", configPath, err)
		return errors.ExitEnvironmentError
	}
	out.Success("created %s", config.DefaultFileName)

	ciPath, err := cigen.WriteJobFile(gopts.Dir, config.Default())
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitEnvironmentError
	}
	out.Success("created %s", filepath.Base(ciPath))

	out.Info("include %s from .gitlab-ci.yml to enable the gate", cigen.DefaultFileName)
	return errors.ExitPass
}
