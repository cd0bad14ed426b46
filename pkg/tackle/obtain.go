package tackle

import (
	"context"
	"fmt"
	"slices"

	"github.com/skyezerfox/tackle/pkg/fetch"
	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/resolver"
)

// obtained is a fetched package and where it was fetched from.
type obtained struct {
	pkg    *manifest.Package
	source string
}

// obtain fetches id into the project, at v unless v is zero. The global cache
// is consulted first: a cached repository is linked into the project with a
// local clone. A version not present in the cache is resolved against the repository
// sources. Anything else is cloned from the forge, through the cache when
// global is set.
func (t *realTackle) obtain(
	ctx context.Context, f fetch.Fetcher, id identifier.ID, v resolver.Version, global bool,
) (*obtained, error) {
	cachedPath, cached, err := t.deps.Cache.LookupRepository(id)
	if err != nil {
		return nil, err
	}

	if cached && (v.IsZero() || t.hasTag(cachedPath, v.String())) {
		t.VerbosePrint("Using cached %s at %s", id.Repository, cachedPath)
		return t.fetchFrom(ctx, f, id, cachedPath, v)
	}

	if !v.IsZero() {
		resolved, err := t.deps.Resolver.Resolve(ctx, resolverName(id), v, resolver.ResolveOpts{Host: id.Host()})
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			return nil, fmt.Errorf("%w: %s@%s", ErrVersionNotFound, id.Repository, v)
		}
		return t.fetchFrom(ctx, f, id, resolved.Location.String(), v)
	}

	if global {
		path, err := t.deps.Cache.Store(ctx, id)
		if err != nil {
			return nil, err
		}
		return t.fetchFrom(ctx, f, id, path, v)
	}

	pkg, err := f.Fetch(ctx, id.String())
	if err != nil {
		return nil, err
	}
	return &obtained{pkg: pkg, source: id.CloneURL()}, nil
}

func (t *realTackle) fetchFrom(
	ctx context.Context, f fetch.Fetcher, id identifier.ID, source string, v resolver.Version,
) (*obtained, error) {
	var (
		pkg *manifest.Package
		err error
	)
	if v.IsZero() {
		pkg, err = f.FetchFrom(ctx, id, source)
	} else {
		pkg, err = f.FetchTag(ctx, id, source, v.String())
	}
	if err != nil {
		return nil, err
	}
	return &obtained{pkg: pkg, source: source}, nil
}

func (t *realTackle) hasTag(repoPath, tag string) bool {
	tags, err := t.deps.Git.ListTags(repoPath)
	if err != nil {
		t.deps.Logger.Warnf("Failed to list tags of %s: %v", repoPath, err)
		return false
	}
	return slices.Contains(tags, tag)
}

// parseOptionalVersion parses s, returning the zero Version for an empty string.
func parseOptionalVersion(s string) (resolver.Version, error) {
	if s == "" {
		return resolver.Version{}, nil
	}
	return resolver.ParseVersion(s)
}

// resolverName is the path joined under each repository source URL. The
// host is passed separately so that a package on a host missing from the
// sources still resolves against its own host first.
func resolverName(id identifier.ID) string {
	return id.Owner() + "/" + id.Name()
}
