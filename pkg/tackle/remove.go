package tackle

import (
	"errors"

	"github.com/skyezerfox/tackle/pkg/fetch"
	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/project"
)

// Remove forgets a package in the project manifest, then deletes its fetched
// copy. A copy that is already gone is not an error. The clone is kept while
// another installed package lives in the same repository.
func (t *realTackle) Remove(raw string) (manifest.HookType, error) {
	id, err := identifier.Canonicalize(raw)
	if err != nil {
		return "", err
	}

	p, err := t.openInitializedProject()
	if err != nil {
		return "", err
	}

	hookType, err := p.RemoveHook(id.String())
	if err != nil {
		return "", err
	}

	mf, err := p.ReadManifest()
	if err != nil {
		return hookType, err
	}

	if sibling, shared := sharedRepository(mf, id); shared {
		t.VerbosePrint("Keeping %s, still used by %s", id.Repository, sibling)
	} else if err := t.newFetcher(p).Remove(id.String()); err != nil && !errors.Is(err, fetch.ErrNotFetched) {
		return hookType, err
	}

	t.deps.Logger.Logf("Removed %s from %s", id, hookType)
	return hookType, nil
}

// sharedRepository returns an installed package cloned from the same repository as id.
func sharedRepository(mf *project.Manifest, id identifier.ID) (string, bool) {
	for _, th := range mf.All() {
		other, err := identifier.Canonicalize(th.Hook.URL)
		if err != nil {
			continue
		}
		if other.Repository == id.Repository {
			return th.Hook.URL, true
		}
	}
	return "", false
}
