package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultRepository is the source searched when no repositories are configured.
const DefaultRepository = "https://github.com/"

// CacheDirEnv overrides cache_dir when set.
const CacheDirEnv = "TACKLE_CACHE_DIR"

// Config represents the application configuration.
type Config struct {
	// Repositories are the version resolution sources, highest priority first.
	Repositories []string `yaml:"repositories"`
	// CacheDir overrides the global package cache location (default ~/.tackle).
	CacheDir string `yaml:"cache_dir,omitempty"`
	// CloneTimeout bounds a single source attempt during version resolution,
	// as a Go duration string. Empty means no bound.
	CloneTimeout string `yaml:"clone_timeout,omitempty"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if len(c.Repositories) == 0 {
		return ErrNoRepositories
	}

	if _, err := c.RepositoryURLs(); err != nil {
		return err
	}

	if _, err := c.CloneTimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// RepositoryURLs parses the configured sources in priority order.
// Each base URL ends with a slash so that package names join under it.
func (c *Config) RepositoryURLs() ([]*url.URL, error) {
	urls := make([]*url.URL, 0, len(c.Repositories))
	for _, raw := range c.Repositories {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRepositoryURL, raw, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: %s: scheme and host are required", ErrInvalidRepositoryURL, raw)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// CloneTimeoutDuration returns the parsed clone timeout, zero when unset.
func (c *Config) CloneTimeoutDuration() (time.Duration, error) {
	if c.CloneTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.CloneTimeout)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCloneTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: must not be negative", ErrInvalidCloneTimeout)
	}
	return d, nil
}

// expandTildes expands a leading ~ in path-valued settings.
func (c *Config) expandTildes() error {
	if c.CacheDir == "" || !strings.HasPrefix(c.CacheDir, "~") {
		return nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	if c.CacheDir == "~" {
		c.CacheDir = homeDir
		return nil
	}
	if strings.HasPrefix(c.CacheDir, "~/") {
		c.CacheDir = filepath.Join(homeDir, c.CacheDir[2:])
	}
	return nil
}
