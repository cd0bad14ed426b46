package fetch

import (
	"context"
	"fmt"

	"github.com/skyezerfox/tackle/pkg/git"
	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/manifest"
)

// Fetch clones https://<repository>.git into the project and loads its manifest.
func (f *realFetcher) Fetch(ctx context.Context, raw string) (*manifest.Package, error) {
	id, err := identifier.Canonicalize(raw)
	if err != nil {
		return nil, err
	}

	return f.FetchFrom(ctx, id, id.CloneURL())
}

// FetchFrom never overwrites: an existing target fails with ErrAlreadyFetched
// and is left as it was. The existence check and the clone are not atomic, so
// two processes fetching the same package may race.
func (f *realFetcher) FetchFrom(ctx context.Context, id identifier.ID, source string) (*manifest.Package, error) {
	return f.fetch(ctx, id, source, "")
}

// FetchTag is FetchFrom with the work tree checked out at tag.
func (f *realFetcher) FetchTag(ctx context.Context, id identifier.ID, source, tag string) (*manifest.Package, error) {
	return f.fetch(ctx, id, source, tag)
}

func (f *realFetcher) fetch(ctx context.Context, id identifier.ID, source, tag string) (*manifest.Package, error) {
	target := f.PackageDir(id)

	exists, err := f.fs.Exists(target)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", target, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyFetched, target)
	}

	f.logger.Logf("Fetching %s", id.Repository)
	f.logger.Debugf("Cloning %s into %s", source, target)

	err = f.git.Clone(ctx, git.CloneParams{
		RepoURL:    source,
		TargetPath: target,
		Tag:        tag,
	})
	if err != nil {
		f.cleanup(target)
		return nil, fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}

	return f.load(id)
}

// cleanup removes what a failed clone left behind.
func (f *realFetcher) cleanup(target string) {
	exists, err := f.fs.Exists(target)
	if err != nil || !exists {
		return
	}
	if err := f.fs.RemoveAll(target); err != nil {
		f.logger.Warnf("Failed to remove partial clone %s: %v", target, err)
	}
}
