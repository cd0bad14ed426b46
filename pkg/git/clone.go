package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Clone clones a repository to the specified path.
func (g *realGit) Clone(ctx context.Context, params CloneParams) error {
	if err := os.MkdirAll(filepath.Dir(params.TargetPath), 0755); err != nil {
		return fmt.Errorf("%w: failed to create parent directory: %w", ErrCloneFailed, err)
	}

	opts := &git.CloneOptions{
		URL:  params.RepoURL,
		Auth: g.auth.For(params.RepoURL),
	}
	if params.AllTags {
		opts.Tags = git.AllTags
	}
	if params.Tag != "" {
		opts.ReferenceName = plumbing.NewTagReferenceName(params.Tag)
		opts.SingleBranch = true
	}

	if _, err := git.PlainCloneContext(ctx, params.TargetPath, false, opts); err != nil {
		return fmt.Errorf("%w: %s into %s: %w", ErrCloneFailed, params.RepoURL, params.TargetPath, err)
	}

	return nil
}
