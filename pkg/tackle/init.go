package tackle

import (
	"errors"

	"github.com/skyezerfox/tackle/pkg/project"
)

// InitResult describes an initialized project.
type InitResult struct {
	Root string
	// Shims are the git hooks written by Init.
	Shims []string
}

// Init creates the .tackle directory of the current repository and installs
// the git hook shims. A git hook tackle did not write is kept, with a warning.
func (t *realTackle) Init() (*InitResult, error) {
	p, err := t.openProject()
	if err != nil {
		return nil, err
	}

	if err := p.Init(); err != nil {
		return nil, err
	}

	shims, err := p.InstallShims()
	if err != nil {
		if !errors.Is(err, project.ErrHookAlreadyExists) {
			return nil, err
		}
		t.deps.Logger.Warnf("%v, remove it and run 'tackle init' again to let tackle manage it", err)
	}

	t.deps.Logger.Logf("Initialized tackle in %s", p.Root())
	return &InitResult{Root: p.Root(), Shims: shims}, nil
}
