package project

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ReadManifest loads .tackle/tackle.toml.
func (p *realProject) ReadManifest() (*Manifest, error) {
	initialized, err := p.IsInitialized()
	if err != nil {
		return nil, err
	}
	if !initialized {
		return nil, ErrNotInitialized
	}

	data, err := p.fs.ReadFile(p.manifestPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestRead, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrManifestRead, p.manifestPath(), err)
	}

	return &m, nil
}
