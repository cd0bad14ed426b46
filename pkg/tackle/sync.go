package tackle

import (
	"context"
	"fmt"

	"github.com/skyezerfox/tackle/pkg/fetch"
	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/project"
)

// Sync fetches every installed package missing from .tackle/hooks, which is
// ignored by git and therefore absent from fresh clones. It returns the
// packages it fetched.
func (t *realTackle) Sync(ctx context.Context) ([]InstalledPackage, error) {
	p, err := t.openInitializedProject()
	if err != nil {
		return nil, err
	}

	mf, err := p.ReadManifest()
	if err != nil {
		return nil, err
	}

	f := t.newFetcher(p)

	var synced []InstalledPackage
	for _, th := range mf.All() {
		fetched, err := t.ensureFetched(ctx, f, th.Hook)
		if err != nil {
			return synced, err
		}
		if fetched {
			synced = append(synced, newInstalledPackage(th.Type, th.Hook, true))
		}
	}

	return synced, nil
}

// ensureFetched loads an installed package, fetching it at its recorded
// version when it is missing. It reports whether a fetch happened.
func (t *realTackle) ensureFetched(ctx context.Context, f fetch.Fetcher, hook project.InstalledHook) (bool, error) {
	id, err := identifier.Canonicalize(hook.URL)
	if err != nil {
		return false, err
	}

	exists, err := t.deps.FS.Exists(f.PackageDir(id))
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	version, err := parseOptionalVersion(hook.Version)
	if err != nil {
		return false, fmt.Errorf("%s: %w", hook.URL, err)
	}

	t.deps.Logger.Logf("Fetching missing package %s", id)
	if _, err := t.obtain(ctx, f, id, version, false); err != nil {
		return false, err
	}

	t.checkIntegrity(f, id, hook)
	return true, nil
}

// checkIntegrity warns when a fetched package.toml differs from the one
// recorded at install time.
func (t *realTackle) checkIntegrity(f fetch.Fetcher, id identifier.ID, hook project.InstalledHook) {
	if hook.Integrity == "" {
		return
	}
	sum, err := t.integrity(f, id)
	if err != nil {
		t.deps.Logger.Warnf("Failed to verify %s: %v", id, err)
		return
	}
	if sum != hook.Integrity {
		t.deps.Logger.Warnf("%s changed since it was installed: %s is now %s", id, manifest.FileName, sum)
	}
}
