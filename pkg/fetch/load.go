package fetch

import (
	"fmt"

	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/manifest"
)

// Load reads the manifest of an already fetched package.
func (f *realFetcher) Load(raw string) (*manifest.Package, error) {
	id, err := identifier.Canonicalize(raw)
	if err != nil {
		return nil, err
	}

	target := f.PackageDir(id)

	exists, err := f.fs.Exists(target)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", target, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFetched, id.Repository)
	}

	return f.load(id)
}

// load reads the manifest at the subpath of a fetched repository.
func (f *realFetcher) load(id identifier.ID) (*manifest.Package, error) {
	dir, err := f.ManifestDir(id)
	if err != nil {
		return nil, err
	}
	return manifest.Load(f.fs, dir)
}
