package cache

import (
	"fmt"
	"path/filepath"
)

// ResolveRoot returns the cache root, creating it on first use.
// The path is computed once per Cache; concurrent first callers block on the
// same lock, so the directory is created at most once.
func (c *realCache) ResolveRoot() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root != "" {
		return c.root, nil
	}

	root, err := c.rootPath()
	if err != nil {
		return "", err
	}

	exists, err := c.fs.Exists(root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCacheRoot, err)
	}

	if !exists {
		c.logger.Debugf("Creating cache directory %s", root)
		if err := c.fs.MkdirAll(root, 0755); err != nil {
			return "", fmt.Errorf("%w: %w", ErrCacheRoot, err)
		}
	}

	c.root = root
	return root, nil
}

func (c *realCache) rootPath() (string, error) {
	if c.rootOverride != "" {
		root, err := c.fs.ExpandPath(c.rootOverride)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrCacheRoot, err)
		}
		return root, nil
	}

	homeDir, err := c.fs.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCacheRoot, err)
	}

	return filepath.Join(homeDir, DirName), nil
}
