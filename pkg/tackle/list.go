package tackle

import (
	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/project"
)

// InstalledPackage is a package recorded in the project manifest.
type InstalledPackage struct {
	Type      manifest.HookType
	URL       string
	Version   string
	Integrity string
	// Fetched reports whether the package is present under .tackle/hooks.
	Fetched bool
}

func newInstalledPackage(t manifest.HookType, hook project.InstalledHook, fetched bool) InstalledPackage {
	return InstalledPackage{
		Type:      t,
		URL:       hook.URL,
		Version:   hook.Version,
		Integrity: hook.Integrity,
		Fetched:   fetched,
	}
}

// List returns the installed hook packages in hook type order.
func (t *realTackle) List() ([]InstalledPackage, error) {
	p, err := t.openInitializedProject()
	if err != nil {
		return nil, err
	}

	mf, err := p.ReadManifest()
	if err != nil {
		return nil, err
	}

	f := t.newFetcher(p)

	var packages []InstalledPackage
	for _, th := range mf.All() {
		fetched := false
		if id, err := identifier.Canonicalize(th.Hook.URL); err == nil {
			fetched, _ = t.deps.FS.Exists(f.PackageDir(id))
		} else {
			t.deps.Logger.Warnf("Invalid package %q in manifest: %v", th.Hook.URL, err)
		}
		packages = append(packages, newInstalledPackage(th.Type, th.Hook, fetched))
	}

	return packages, nil
}
