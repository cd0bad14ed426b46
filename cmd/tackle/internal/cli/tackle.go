package cli

import (
	"fmt"
	"os"

	"github.com/skyezerfox/tackle/pkg/cache"
	"github.com/skyezerfox/tackle/pkg/dependencies"
	"github.com/skyezerfox/tackle/pkg/forge"
	"github.com/skyezerfox/tackle/pkg/project"
	"github.com/skyezerfox/tackle/pkg/resolver"
	"github.com/skyezerfox/tackle/pkg/tackle"
)

// NewTackle creates a Tackle instance wired from the configuration and the working directory.
func NewTackle() (tackle.Tackle, error) {
	configManager, err := NewConfigManager()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(configManager)
	if err != nil {
		return nil, err
	}

	sources, err := cfg.RepositoryURLs()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	repositories := make([]resolver.Repository, len(sources))
	for i, u := range sources {
		repositories[i] = resolver.Repository{URL: u}
	}

	timeout, err := cfg.CloneTimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	log := NewLogger()
	deps := dependencies.New().
		WithConfig(configManager).
		WithLogger(log)

	return tackle.NewTackle(tackle.NewTackleParams{
		Dependencies: deps.
			WithContext(project.NewContext(deps.Git, workDir)).
			WithForges(forge.NewManager(log)).
			WithCache(cache.NewCache(cache.NewCacheParams{
				FS:     deps.FS,
				Git:    deps.Git,
				Logger: log,
				Root:   cfg.CacheDir,
			})).
			WithResolver(resolver.NewResolver(resolver.NewResolverParams{
				FS:           deps.FS,
				Git:          deps.Git,
				Logger:       log,
				Repositories: repositories,
				Timeout:      timeout,
			})),
	})
}
