package project

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// WriteManifest replaces .tackle/tackle.toml.
func (p *realProject) WriteManifest(m *Manifest) error {
	if m.Version == "" {
		m.Version = ManifestVersion
	}

	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrManifestWrite, err)
	}

	if err := p.fs.WriteFileAtomic(p.manifestPath(), data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrManifestWrite, err)
	}

	return nil
}
