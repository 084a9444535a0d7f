package changeset

import "os"

// GitLab CI variables consulted for default revision references.
const (
	envTargetBranch = "CI_MERGE_REQUEST_TARGET_BRANCH_NAME"
	envSourceBranch = "CI_MERGE_REQUEST_SOURCE_BRANCH_NAME"
	envCommitSHA    = "CI_COMMIT_SHA"
)

// DefaultRefs returns the target and source references for the current run.
// Explicit values win. Inside a merge-request pipeline the GitLab CI
// variables supply the refs: the target branch as a remote-tracking ref
// (MR pipelines run on detached checkouts where only origin/* exists), the
// source as the pipeline commit SHA, falling back to the source branch when
// the SHA is not set. Outside an MR context the diff degrades to the
// previous commit.
func DefaultRefs(target, source string) (string, string) {
	if target == "" {
		if branch := os.Getenv(envTargetBranch); branch != "" {
			target = "origin/" + branch
		}
	}
	if source == "" && os.Getenv(envTargetBranch) != "" {
		if sha := os.Getenv(envCommitSHA); sha != "" {
			source = sha
		} else if branch := os.Getenv(envSourceBranch); branch != "" {
			source = "origin/" + branch
		}
	}

	if target == "" {
		target = "HEAD~1"
	}
	if source == "" {
		source = "HEAD"
	}
	return target, source
}
