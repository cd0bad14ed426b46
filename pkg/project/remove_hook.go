package project

import (
	"fmt"

	"github.com/skyezerfox/tackle/pkg/manifest"
)

// RemoveHook forgets a package under whichever hook type holds it.
func (p *realProject) RemoveHook(url string) (manifest.HookType, error) {
	m, err := p.ReadManifest()
	if err != nil {
		return "", err
	}

	for _, t := range manifest.HookTypes {
		list := m.Hooks.ForType(t)
		for i, existing := range *list {
			if existing.URL != url {
				continue
			}
			*list = append((*list)[:i], (*list)[i+1:]...)
			if err := p.WriteManifest(m); err != nil {
				return "", err
			}
			return t, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrHookNotInstalled, url)
}
