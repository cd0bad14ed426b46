package cache

import (
	"fmt"
	"path/filepath"

	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/manifest"
)

// LookupPackage loads the manifest of a cached package.
// A cached repository whose subpath has no valid manifest is an error, not a miss.
func (c *realCache) LookupPackage(raw string) (*manifest.Package, error) {
	id, err := identifier.Canonicalize(raw)
	if err != nil {
		return nil, err
	}

	repoPath, found, err := c.LookupRepository(id)
	if err != nil {
		return nil, err
	}

	if !found {
		c.logger.Debugf("Cache miss for %s", id.Repository)
		return nil, nil
	}

	packageDir := filepath.Join(repoPath, filepath.FromSlash(id.SubPath))

	within, err := c.fs.IsPathWithinBase(repoPath, packageDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubPathOutsideRepository, err)
	}
	if !within {
		return nil, fmt.Errorf("%w: %s", ErrSubPathOutsideRepository, id.SubPath)
	}

	c.logger.Debugf("Cache hit for %s at %s", id, packageDir)

	return manifest.Load(c.fs, packageDir)
}
