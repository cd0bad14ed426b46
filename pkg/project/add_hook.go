package project

import (
	"fmt"

	"github.com/skyezerfox/tackle/pkg/manifest"
)

// AddHook records a package under a hook type, replacing an entry with the same URL.
func (p *realProject) AddHook(hookType manifest.HookType, hook InstalledHook) error {
	m, err := p.ReadManifest()
	if err != nil {
		return err
	}

	list := m.Hooks.ForType(hookType)
	if list == nil {
		return fmt.Errorf("%w: %s", manifest.ErrUnknownHookType, hookType)
	}

	for i, existing := range *list {
		if existing.URL == hook.URL {
			p.logger.Debugf("Updating %s in %s", hook.URL, hookType)
			(*list)[i] = hook
			return p.WriteManifest(m)
		}
	}

	p.logger.Debugf("Adding %s to %s", hook.URL, hookType)
	*list = append(*list, hook)
	return p.WriteManifest(m)
}
