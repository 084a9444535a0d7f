package report

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartpr/fmtgate/internal/model"
)

// JUnit report shapes, matching what GitLab's test-report widget parses.
// One testcase per processed file; an error outcome becomes a failure
// element so the widget shows the command message inline. Only the
// failures attributes carry the error count; the errors attributes stay 0
// because consumers sum both when counting failed tests.

type junitTestSuites struct {
	XMLName  xml.Name         `xml:"testsuites"`
	Tests    int              `xml:"tests,attr"`
	Failures int              `xml:"failures,attr"`
	Errors   int              `xml:"errors,attr"`
	Suites   []junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Errors   int             `xml:"errors,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	ClassName string        `xml:"classname,attr"`
	Name      string        `xml:"name,attr"`
	Time      string        `xml:"time,attr"`
	Failure   *junitFailure `xml:"failure,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

// WriteJUnit renders the report as a JUnit XML file at path, creating
// parent directories as needed.
func (r *Report) WriteJUnit(path string) error {
	t := r.Totals()

	suite := junitTestSuite{
		Name:     "fmtgate",
		Tests:    t.Total,
		Failures: t.Errors,
	}
	for _, o := range r.Outcomes() {
		tc := junitTestCase{
			ClassName: string(o.File.Class),
			Name:      o.File.Path,
			Time:      fmt.Sprintf("%.3f", o.Duration.Seconds()),
		}
		if o.Status == model.StatusError {
			tc.Failure = &junitFailure{
				Message: o.Message,
				Content: o.Message,
			}
		}
		suite.Cases = append(suite.Cases, tc)
	}

	doc := junitTestSuites{
		Tests:    t.Total,
		Failures: t.Errors,
		Suites:   []junitTestSuite{suite},
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal junit report: %w", err)
	}
	return writeArtifact(path, append([]byte(xml.Header), append(data, '\n')...))
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
