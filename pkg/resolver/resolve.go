package resolver

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Resolve queries every source concurrently and waits for all of them.
// Results are kept per source index, so the pick depends on priority order
// and never on which attempt finished first. A failing source is logged and
// ignored; only ErrInternal aborts the resolution.
func (r *realResolver) Resolve(
	ctx context.Context, name string, version Version, opts ...ResolveOpts,
) (*ResolvedPackage, error) {
	repositories := r.sources(extractResolveOptions(opts).Host)
	if len(repositories) == 0 {
		r.logger.Debugf("No source to resolve %s@%s against", name, version)
		return nil, nil
	}

	r.logger.Debugf("Resolving %s@%s against %d source(s)", name, version, len(repositories))

	results := make([]*ResolvedPackage, len(repositories))

	var g errgroup.Group
	for i, repo := range repositories {
		g.Go(func() error {
			resolved, err := r.attempt(ctx, repo, name, version)
			if errors.Is(err, ErrInternal) {
				return err
			}
			if err != nil {
				r.logger.Debugf("Source %s failed for %s: %v", repo, name, err)
				return nil
			}
			results[i] = resolved
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, resolved := range results {
		if resolved != nil {
			r.logger.Debugf("Resolved %s@%s from %s", name, version, resolved.Source)
			return resolved, nil
		}
	}

	r.logger.Debugf("No source has %s@%s", name, version)
	return nil, nil
}

// sources returns the configured repositories, led by https://<host>/ when
// host is set and none of them lives on it.
func (r *realResolver) sources(host string) []Repository {
	if host == "" {
		return r.repositories
	}
	for _, repo := range r.repositories {
		if repo.URL != nil && strings.EqualFold(repo.URL.Hostname(), host) {
			return r.repositories
		}
	}

	home := Repository{URL: &url.URL{Scheme: "https", Host: host, Path: "/"}}
	return append([]Repository{home}, r.repositories...)
}

func extractResolveOptions(opts []ResolveOpts) ResolveOpts {
	if len(opts) > 0 {
		return opts[0]
	}
	return ResolveOpts{}
}
