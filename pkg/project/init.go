package project

import (
	"fmt"
	"path/filepath"

	"github.com/skyezerfox/tackle/configs"
)

// Init creates .tackle with a default manifest, a hooks directory and a .gitignore.
func (p *realProject) Init() error {
	initialized, err := p.IsInitialized()
	if err != nil {
		return err
	}
	if initialized {
		return fmt.Errorf("%w: %s", ErrAlreadyInitialized, p.tackleDir())
	}

	p.logger.Logf("Initializing tackle in %s", p.root)

	if err := p.fs.MkdirAll(filepath.Join(p.tackleDir(), HooksDir), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", p.tackleDir(), err)
	}

	if err := p.fs.WriteFileAtomic(p.manifestPath(), configs.DefaultProjectManifest, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrManifestWrite, err)
	}

	gitignore := filepath.Join(p.tackleDir(), GitignoreFile)
	if err := p.fs.CreateFileIfNotExists(gitignore, configs.DefaultGitignore, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", gitignore, err)
	}

	return nil
}
