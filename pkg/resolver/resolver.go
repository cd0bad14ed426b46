package resolver

import (
	"context"
	"time"

	"github.com/skyezerfox/tackle/pkg/fs"
	"github.com/skyezerfox/tackle/pkg/git"
	"github.com/skyezerfox/tackle/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=resolver.go -destination=mocks/resolver.gen.go -package=mocks

// Resolver interface resolves packages against repository sources.
type Resolver interface {
	// Resolve finds the highest-priority source holding a tag equal to version.
	// It returns nil, nil when no source has the package at that version.
	Resolve(ctx context.Context, name string, version Version, opts ...ResolveOpts) (*ResolvedPackage, error)
}

// ResolveOpts contains optional parameters for Resolve.
type ResolveOpts struct {
	// Host is the host the package identifier names. When no configured
	// source lives on it, https://<Host>/ is queried ahead of the others.
	Host string
}

type realResolver struct {
	fs           fs.FS
	git          git.Git
	logger       logger.Logger
	repositories []Repository
	timeout      time.Duration
}

// NewResolverParams contains parameters for creating a new Resolver instance.
type NewResolverParams struct {
	FS     fs.FS
	Git    git.Git
	Logger logger.Logger
	// Repositories are queried concurrently; the first in this order wins ties.
	Repositories []Repository
	// Timeout bounds each source attempt. Zero means no bound.
	Timeout time.Duration
}

// NewResolver creates a new Resolver instance.
func NewResolver(params NewResolverParams) Resolver {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &realResolver{
		fs:           params.FS,
		git:          params.Git,
		logger:       log,
		repositories: params.Repositories,
		timeout:      params.Timeout,
	}
}
