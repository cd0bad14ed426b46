package cache

import (
	"fmt"

	"github.com/skyezerfox/tackle/pkg/identifier"
)

// Remove deletes a cached repository.
func (c *realCache) Remove(id identifier.ID) error {
	path, found, err := c.LookupRepository(id)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("%w: %s", ErrNotCached, id.Repository)
	}

	c.logger.Logf("Removing %s from cache", id.Repository)
	return c.fs.RemoveAll(path)
}
