// Package cigen generates the GitLab CI job definition for running the gate
// in merge-request pipelines.
package cigen

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/smartpr/fmtgate/internal/config"
)

// DefaultFileName is where WriteJobFile places the generated include file.
const DefaultFileName = ".gitlab-ci.fmtgate.yml"

// JobConfig represents one GitLab CI job definition.
type JobConfig struct {
	Stage     string        `yaml:"stage"`
	Image     string        `yaml:"image,omitempty"`
	Script    []string      `yaml:"script"`
	Rules     []JobRule     `yaml:"rules,omitempty"`
	Artifacts *JobArtifacts `yaml:"artifacts,omitempty"`
}

// JobRule represents one entry of a job's rules list.
type JobRule struct {
	If string `yaml:"if"`
}

// JobArtifacts represents a job's artifacts block.
type JobArtifacts struct {
	When    string      `yaml:"when,omitempty"`
	Paths   []string    `yaml:"paths,omitempty"`
	Reports *JobReports `yaml:"reports,omitempty"`
}

// JobReports represents the artifacts.reports block.
type JobReports struct {
	JUnit string `yaml:"junit,omitempty"`
}

// GenerateJobFile renders the CI include file content. The job only runs in
// merge-request pipelines and uploads its artifacts even when the gate fails,
// so the test-report widget shows the failures.
func GenerateJobFile(cfg *config.Config) (string, error) {
	junit := config.DefaultJUnitPath
	jsonPath := config.DefaultJSONPath
	if cfg != nil && cfg.Reports != nil {
		if cfg.Reports.JUnit != "" {
			junit = cfg.Reports.JUnit
		}
		if cfg.Reports.JSON != "" {
			jsonPath = cfg.Reports.JSON
		}
	}

	doc := map[string]JobConfig{
		"fmtgate": {
			Stage:  "format",
			Script: []string{"fmtgate run"},
			Rules: []JobRule{
				{If: `$CI_PIPELINE_SOURCE == "merge_request_event"`},
			},
			Artifacts: &JobArtifacts{
				When:  "always",
				Paths: []string{junit, jsonPath},
				Reports: &JobReports{
					JUnit: junit,
				},
			},
		},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("generate ci job file: %w", err)
	}
	return string(data), nil
}

// WriteJobFile generates the include file and writes it under dir.
// Refuses to overwrite an existing file.
func WriteJobFile(dir string, cfg *config.Config) (string, error) {
	content, err := GenerateJobFile(cfg)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", DefaultFileName)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
