package cache

import (
	"fmt"

	"github.com/skyezerfox/tackle/pkg/identifier"
)

// LookupRepository returns the cached path of a repository and whether it exists.
func (c *realCache) LookupRepository(id identifier.ID) (string, bool, error) {
	root, err := c.ResolveRoot()
	if err != nil {
		return "", false, err
	}

	path := repositoryPath(root, id)

	exists, err := c.fs.Exists(path)
	if err != nil {
		return "", false, fmt.Errorf("failed to check cached repository %s: %w", id.Repository, err)
	}

	if !exists {
		return "", false, nil
	}

	return path, true, nil
}
