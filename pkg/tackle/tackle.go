package tackle

import (
	"context"
	"fmt"

	"github.com/skyezerfox/tackle/pkg/dependencies"
	"github.com/skyezerfox/tackle/pkg/executor"
	"github.com/skyezerfox/tackle/pkg/fetch"
	"github.com/skyezerfox/tackle/pkg/forge"
	"github.com/skyezerfox/tackle/pkg/logger"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/project"
	"github.com/skyezerfox/tackle/pkg/resolver"
	"github.com/skyezerfox/tackle/pkg/scheduler"
)

// Tackle interface provides the operations of the tackle command line.
type Tackle interface {
	// Init creates the .tackle directory of the current repository and installs the git hook shims.
	Init() (*InitResult, error)
	// Add installs a hook package into the current project.
	Add(ctx context.Context, raw string, opts ...AddOpts) (*AddResult, error)
	// Remove uninstalls a hook package and returns the hook type it was installed under.
	Remove(raw string) (manifest.HookType, error)
	// List returns the installed hook packages in hook type order.
	List() ([]InstalledPackage, error)
	// Sync fetches every installed package missing from .tackle/hooks.
	Sync(ctx context.Context) ([]InstalledPackage, error)
	// Query searches the forges for published hook packages.
	Query(ctx context.Context, query string, opts ...QueryOpts) ([]forge.PackageInfo, error)
	// Info returns the forge metadata of a package.
	Info(ctx context.Context, raw string) (*forge.PackageInfo, error)
	// Resolve finds the repository source holding name at version.
	Resolve(ctx context.Context, name, version string) (*resolver.ResolvedPackage, error)
	// Run runs every installed package of a hook type through the scheduler.
	Run(ctx context.Context, hookType manifest.HookType) (*RunReport, error)
	// CachePath returns the global cache root.
	CachePath() (string, error)
	// CacheLookup returns the cached location of a package and whether it is cached.
	CacheLookup(raw string) (string, bool, error)
	// SetLogger sets the logger for this instance.
	SetLogger(logger logger.Logger)
}

// NewTackleParams contains parameters for creating a new Tackle instance.
type NewTackleParams struct {
	Dependencies *dependencies.Dependencies
}

type realTackle struct {
	deps *dependencies.Dependencies
}

// NewTackle creates a new Tackle instance.
func NewTackle(params NewTackleParams) (Tackle, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	return &realTackle{
		deps: deps,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (t *realTackle) VerbosePrint(msg string, args ...interface{}) {
	if t.deps.Logger != nil {
		t.deps.Logger.Debugf(msg, args...)
	}
}

// SetLogger sets the logger for this Tackle instance.
func (t *realTackle) SetLogger(logger logger.Logger) {
	t.deps.Logger = logger
}

// openProject opens the project enclosing the working directory.
func (t *realTackle) openProject() (project.Project, error) {
	return t.deps.ProjectProvider(project.OpenParams{
		FS:      t.deps.FS,
		Context: t.deps.Context,
		Logger:  t.deps.Logger,
	})
}

// openInitializedProject opens the project and fails when it has no .tackle directory.
func (t *realTackle) openInitializedProject() (project.Project, error) {
	p, err := t.openProject()
	if err != nil {
		return nil, err
	}

	initialized, err := p.IsInitialized()
	if err != nil {
		return nil, err
	}
	if !initialized {
		return nil, project.ErrNotInitialized
	}

	return p, nil
}

func (t *realTackle) newFetcher(p project.Project) fetch.Fetcher {
	return t.deps.FetcherProvider(fetch.NewFetcherParams{
		FS:          t.deps.FS,
		Git:         t.deps.Git,
		Logger:      t.deps.Logger,
		ProjectRoot: p.Root(),
	})
}

func (t *realTackle) newExecutor(p project.Project) executor.Executor {
	return t.deps.ExecutorProvider(executor.NewExecutorParams{
		Dir:    p.Root(),
		Logger: t.deps.Logger,
	})
}

func (t *realTackle) newEnv(p project.Project) scheduler.Env {
	return t.deps.EnvProvider(scheduler.NewEnvParams{
		FS:     t.deps.FS,
		Git:    t.deps.Git,
		Logger: t.deps.Logger,
		Root:   p.Root(),
	})
}
