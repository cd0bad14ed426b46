package resolver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/skyezerfox/tackle/pkg/git"
)

// attempt clones one source into a scratch directory and looks for the tag.
// The scratch directory is removed whatever the outcome.
func (r *realResolver) attempt(
	ctx context.Context,
	repo Repository,
	name string,
	version Version,
) (resolved *ResolvedPackage, err error) {
	defer func() {
		if p := recover(); p != nil {
			resolved = nil
			err = fmt.Errorf("%w: resolving %s from %s: %v", ErrInternal, name, repo, p)
		}
	}()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	tmpDir, err := r.fs.MkdirTemp("", "tackle-resolve-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() {
		if rmErr := r.fs.RemoveAll(tmpDir); rmErr != nil {
			r.logger.Warnf("Failed to remove scratch directory %s: %v", tmpDir, rmErr)
		}
	}()

	packageURL := repo.PackageURL(name)
	clonePath := filepath.Join(tmpDir, "repo")

	err = r.git.Clone(ctx, git.CloneParams{
		RepoURL:    packageURL.String(),
		TargetPath: clonePath,
		AllTags:    true,
	})
	if err != nil {
		return nil, err
	}

	tags, err := r.git.ListTags(clonePath)
	if err != nil {
		return nil, err
	}

	want := version.String()
	for _, tag := range tags {
		if tag == want {
			return &ResolvedPackage{
				Name:     name,
				Version:  version,
				Source:   repo,
				Location: RemoteLocation(packageURL),
			}, nil
		}
	}

	return nil, nil
}
