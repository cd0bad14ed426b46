package tackle

import (
	"context"

	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/scheduler"
)

// PackageReport is the outcome of the hooks of one package.
type PackageReport struct {
	URL    string
	Name   string
	Report *scheduler.Report
}

// RunReport is the outcome of every package installed under a hook type.
type RunReport struct {
	HookType manifest.HookType
	Packages []PackageReport
}

// Failed reports whether any hook of any package failed.
func (r *RunReport) Failed() bool {
	for _, p := range r.Packages {
		if p.Report.Failed() {
			return true
		}
	}
	return false
}

// Count returns the number of hooks across packages that ended in state.
func (r *RunReport) Count(state scheduler.HookState) int {
	n := 0
	for _, p := range r.Packages {
		n += p.Report.Count(state)
	}
	return n
}

// Run runs the hooks of every package installed under hookType, one package
// at a time in manifest order. Each package gets its own scheduling pass, so
// conditions only refer to hooks of the same package. Missing packages are
// fetched first. A failed hook does not stop later packages; the caller
// decides what a failed report means.
func (t *realTackle) Run(ctx context.Context, hookType manifest.HookType) (*RunReport, error) {
	hookType, err := manifest.ParseHookType(string(hookType))
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

	f := t.newFetcher(p)
	exec := t.newExecutor(p)
	env := t.newEnv(p)

	report := &RunReport{HookType: hookType}
	for _, hook := range *mf.Hooks.ForType(hookType) {
		if _, err := t.ensureFetched(ctx, f, hook); err != nil {
			return report, err
		}

		pkg, err := f.Load(hook.URL)
		if err != nil {
			return report, err
		}

		name := pkg.DisplayName(hook.URL)
		defs := pkg.Hooks.ForType(hookType)
		if len(defs) == 0 {
			t.VerbosePrint("%s defines no %s hooks", name, hookType)
			continue
		}

		t.deps.Logger.Logf("Running %d %s hook(s) of %s", len(defs), hookType, name)

		result, err := scheduler.FromHooks(defs, env).WithLogger(t.deps.Logger).Run(ctx, exec)
		if result != nil {
			report.Packages = append(report.Packages, PackageReport{
				URL:    hook.URL,
				Name:   name,
				Report: result,
			})
		}
		if err != nil {
			return report, err
		}
	}

	return report, nil
}
