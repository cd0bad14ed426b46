package fetch

import (
	"fmt"
	"path/filepath"

	"github.com/skyezerfox/tackle/pkg/identifier"
)

// ManifestDir returns the directory of id's package.toml inside its clone.
// Packages of one monorepo share the clone and differ by subpath.
func (f *realFetcher) ManifestDir(id identifier.ID) (string, error) {
	repoDir := f.PackageDir(id)
	dir := filepath.Join(repoDir, filepath.FromSlash(id.SubPath))

	within, err := f.fs.IsPathWithinBase(repoDir, dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSubPathOutsideRepository, err)
	}
	if !within {
		return "", fmt.Errorf("%w: %s", ErrSubPathOutsideRepository, id.SubPath)
	}

	return dir, nil
}
