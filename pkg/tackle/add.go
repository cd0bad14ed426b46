package tackle

import (
	"context"
	"errors"
	"fmt"

	"github.com/skyezerfox/tackle/pkg/fetch"
	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/project"
)

// AddOpts contains optional parameters for Add.
type AddOpts struct {
	// Version pins a tag. Empty means the default branch.
	Version string
	// HookType defaults to pre-commit.
	HookType manifest.HookType
	// Global also keeps the repository in the global cache.
	Global bool
}

// AddResult describes an installed package.
type AddResult struct {
	Package  InstalledPackage
	Manifest *manifest.Package
	// Source is the URL or cache path the package was cloned from.
	Source string
}

// Add installs a hook package into the current project and records it in the
// project manifest.
func (t *realTackle) Add(ctx context.Context, raw string, opts ...AddOpts) (*AddResult, error) {
	options := extractAddOptions(opts)

	id, err := identifier.Canonicalize(raw)
	if err != nil {
		return nil, err
	}
	options.HookType, err = manifest.ParseHookType(string(options.HookType))
	if err != nil {
		return nil, err
	}
	version, err := parseOptionalVersion(options.Version)
	if err != nil {
		return nil, err
	}

	p, err := t.openInitializedProject()
	if err != nil {
		return nil, err
	}

	mf, err := p.ReadManifest()
	if err != nil {
		return nil, err
	}
	if hookType, _, found := mf.Find(id.String()); found {
		return nil, fmt.Errorf("%w: %s in %s", ErrPackageAlreadyInstalled, id, hookType)
	}

	t.deps.Logger.Logf("Installing %s", id)

	f := t.newFetcher(p)
	got, err := t.obtain(ctx, f, id, version, options.Global)
	if errors.Is(err, fetch.ErrAlreadyFetched) {
		// Left behind by an earlier add that did not reach the manifest.
		t.VerbosePrint("Reusing fetched %s", id.Repository)
		var pkg *manifest.Package
		pkg, err = f.Load(id.String())
		got = &obtained{pkg: pkg, source: f.PackageDir(id)}
	}
	if err != nil {
		return nil, err
	}

	if len(got.pkg.Hooks.ForType(options.HookType)) == 0 {
		t.deps.Logger.Warnf("%s defines no %s hooks", got.pkg.DisplayName(id.String()), options.HookType)
	}

	sum, err := t.integrity(f, id)
	if err != nil {
		return nil, err
	}

	hook := project.InstalledHook{
		URL:       id.String(),
		Version:   version.String(),
		Integrity: sum,
	}
	if err := p.AddHook(options.HookType, hook); err != nil {
		return nil, err
	}

	t.deps.Logger.Logf("Added %s to %s", got.pkg.DisplayName(id.String()), options.HookType)

	return &AddResult{
		Package:  newInstalledPackage(options.HookType, hook, true),
		Manifest: got.pkg,
		Source:   got.source,
	}, nil
}

func extractAddOptions(opts []AddOpts) AddOpts {
	var options AddOpts
	if len(opts) > 0 {
		options = opts[0]
	}
	if options.HookType == "" {
		options.HookType = manifest.PreCommit
	}
	return options
}
