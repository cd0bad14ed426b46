// Package dependencies provides a centralized dependency container for tackle.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/skyezerfox/tackle/pkg/cache"
	"github.com/skyezerfox/tackle/pkg/config"
	"github.com/skyezerfox/tackle/pkg/executor"
	"github.com/skyezerfox/tackle/pkg/fetch"
	"github.com/skyezerfox/tackle/pkg/forge"
	"github.com/skyezerfox/tackle/pkg/fs"
	"github.com/skyezerfox/tackle/pkg/git"
	"github.com/skyezerfox/tackle/pkg/logger"
	"github.com/skyezerfox/tackle/pkg/project"
	"github.com/skyezerfox/tackle/pkg/resolver"
	"github.com/skyezerfox/tackle/pkg/scheduler"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing               = errors.New("fs dependency is required but not set")
	ErrGitMissing              = errors.New("git dependency is required but not set")
	ErrConfigMissing           = errors.New("config dependency is required but not set")
	ErrLoggerMissing           = errors.New("logger dependency is required but not set")
	ErrContextMissing          = errors.New("context dependency is required but not set")
	ErrCacheMissing            = errors.New("cache dependency is required but not set")
	ErrResolverMissing         = errors.New("resolver dependency is required but not set")
	ErrForgesMissing           = errors.New("forges dependency is required but not set")
	ErrProjectProviderMissing  = errors.New("project provider dependency is required but not set")
	ErrFetcherProviderMissing  = errors.New("fetcher provider dependency is required but not set")
	ErrExecutorProviderMissing = errors.New("executor provider dependency is required but not set")
	ErrEnvProviderMissing      = errors.New("env provider dependency is required but not set")
)

// Providers build the components bound to a project root, which is only known
// once the repository context has been discovered.
type (
	ProjectProvider  func(params project.OpenParams) (project.Project, error)
	FetcherProvider  func(params fetch.NewFetcherParams) fetch.Fetcher
	ExecutorProvider func(params executor.NewExecutorParams) executor.Executor
	EnvProvider      func(params scheduler.NewEnvParams) scheduler.Env
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS       fs.FS
	Git      git.Git
	Config   config.Manager
	Logger   logger.Logger
	Context  project.Context
	Cache    cache.Cache
	Resolver resolver.Resolver
	Forges   forge.ManagerInterface

	ProjectProvider  ProjectProvider
	FetcherProvider  FetcherProvider
	ExecutorProvider ExecutorProvider
	EnvProvider      EnvProvider
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		FS:               fs.NewFS(),
		Git:              git.NewGit(),
		Logger:           logger.NewNoopLogger(),
		Forges:           forge.NewManager(nil),
		ProjectProvider:  project.Open,
		FetcherProvider:  fetch.NewFetcher,
		ExecutorProvider: executor.NewExecutor,
		EnvProvider:      scheduler.NewEnv,
		// Config, Context, Cache and Resolver depend on the configuration and
		// the working directory, so they are set via With* methods.
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithContext sets the repository context and returns the instance for chaining.
func (d *Dependencies) WithContext(ctx project.Context) *Dependencies {
	d.Context = ctx
	return d
}

// WithCache sets the package cache and returns the instance for chaining.
func (d *Dependencies) WithCache(c cache.Cache) *Dependencies {
	d.Cache = c
	return d
}

// WithResolver sets the version resolver and returns the instance for chaining.
func (d *Dependencies) WithResolver(r resolver.Resolver) *Dependencies {
	d.Resolver = r
	return d
}

// WithForges sets the forge manager and returns the instance for chaining.
func (d *Dependencies) WithForges(fm forge.ManagerInterface) *Dependencies {
	d.Forges = fm
	return d
}

// WithProjectProvider sets the project provider and returns the instance for chaining.
func (d *Dependencies) WithProjectProvider(pp ProjectProvider) *Dependencies {
	d.ProjectProvider = pp
	return d
}

// WithFetcherProvider sets the fetcher provider and returns the instance for chaining.
func (d *Dependencies) WithFetcherProvider(fp FetcherProvider) *Dependencies {
	d.FetcherProvider = fp
	return d
}

// WithExecutorProvider sets the executor provider and returns the instance for chaining.
func (d *Dependencies) WithExecutorProvider(ep ExecutorProvider) *Dependencies {
	d.ExecutorProvider = ep
	return d
}

// WithEnvProvider sets the env provider and returns the instance for chaining.
func (d *Dependencies) WithEnvProvider(ep EnvProvider) *Dependencies {
	d.EnvProvider = ep
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Git == nil, ErrGitMissing},
		{d.Config == nil, ErrConfigMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.Context == nil, ErrContextMissing},
		{d.Cache == nil, ErrCacheMissing},
		{d.Resolver == nil, ErrResolverMissing},
		{d.Forges == nil, ErrForgesMissing},
		{d.ProjectProvider == nil, ErrProjectProviderMissing},
		{d.FetcherProvider == nil, ErrFetcherProviderMissing},
		{d.ExecutorProvider == nil, ErrExecutorProviderMissing},
		{d.EnvProvider == nil, ErrEnvProviderMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
