package cache

import (
	"context"
	"fmt"

	"github.com/skyezerfox/tackle/pkg/git"
	"github.com/skyezerfox/tackle/pkg/identifier"
)

// Store clones a repository into the cache unless it is already there.
func (c *realCache) Store(ctx context.Context, id identifier.ID) (string, error) {
	path, found, err := c.LookupRepository(id)
	if err != nil {
		return "", err
	}

	if found {
		c.logger.Debugf("Repository %s already cached", id.Repository)
		return path, nil
	}

	root, err := c.ResolveRoot()
	if err != nil {
		return "", err
	}
	path = repositoryPath(root, id)

	c.logger.Logf("Caching %s", id.Repository)
	err = c.git.Clone(ctx, git.CloneParams{
		RepoURL:    id.CloneURL(),
		TargetPath: path,
		AllTags:    true,
	})
	if err != nil {
		if rmErr := c.fs.RemoveAll(path); rmErr != nil {
			c.logger.Warnf("Failed to clean up partial clone %s: %v", path, rmErr)
		}
		return "", fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	return path, nil
}
