// Package changeset computes the set of file paths that differ between two
// revisions, classified by extension and ready for formatter dispatch.
package changeset

import (
	"context"
	"strings"

	"github.com/smartpr/fmtgate/internal/errors"
	"github.com/smartpr/fmtgate/internal/model"
)

// Resolver computes change sets from a git repository.
type Resolver struct {
	git GitRunner
	dir string // repository working directory
}

// NewResolver creates a resolver for the repository at dir.
func NewResolver(dir string, git GitRunner) *Resolver {
	return &Resolver{git: git, dir: dir}
}

// Resolve returns the ordered, de-duplicated list of files that differ
// between target and source, excluding deleted files and files without a
// supported extension class. An empty diff is an empty slice, not an error.
// An unresolvable reference is a revision error, which aborts the whole run.
func (r *Resolver) Resolve(ctx context.Context, target, source string) ([]model.ChangedFile, error) {
	for _, ref := range []string{target, source} {
		if err := r.verifyRef(ctx, ref); err != nil {
			return nil, err
		}
	}

	// Three-dot diff: changes on the source side since the merge base,
	// matching what the merge request will actually introduce.
	// --diff-filter=d drops deleted paths: there is nothing left to format.
	out, err := r.git.Run(ctx, r.dir,
		"diff", "--name-only", "-z", "--diff-filter=d", target+"..."+source)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute change set")
	}

	var files []model.ChangedFile
	seen := make(map[string]bool)
	for _, path := range strings.Split(string(out), "\x00") {
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true

		class := model.Classify(path)
		if class == model.ClassUnsupported {
			continue
		}
		files = append(files, model.ChangedFile{Path: path, Class: class})
	}

	return files, nil
}

// verifyRef checks that a reference resolves to a commit.
func (r *Resolver) verifyRef(ctx context.Context, ref string) error {
	if ref == "" {
		return errors.Revision(ref, nil)
	}
	if _, err := r.git.Run(ctx, r.dir, "rev-parse", "--verify", "--quiet", ref+"^{commit}"); err != nil {
		return errors.Revision(ref, err)
	}
	return nil
}
