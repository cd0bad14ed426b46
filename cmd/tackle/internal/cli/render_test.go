//go:build unit

package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyezerfox/tackle/pkg/forge"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/scheduler"
	"github.com/skyezerfox/tackle/pkg/tackle"
)

func TestRenderPackages(t *testing.T) {
	out := RenderPackages([]tackle.InstalledPackage{
		{Type: manifest.PreCommit, URL: "github.com/org/hooks", Version: "1.0.0", Fetched: true},
		{Type: manifest.PrePush, URL: "github.com/org/push"},
	})

	assert.Contains(t, out, "pre-commit hooks:")
	assert.Contains(t, out, "github.com/org/hooks@1.0.0")
	assert.Contains(t, out, "github.com/org/push")
	assert.Contains(t, out, "not fetched")
	assert.Contains(t, out, "No hooks installed.")
}

func TestRenderSearchResults_Empty(t *testing.T) {
	assert.Contains(t, RenderSearchResults(nil), "No packages found.")
}

func TestRenderSearchResults(t *testing.T) {
	out := RenderSearchResults([]forge.PackageInfo{{Identifier: "github.com/org/hooks", Description: "Lint", Stars: 3}})
	assert.Contains(t, out, "github.com/org/hooks")
	assert.Contains(t, out, "Lint")
}

func TestRenderReport(t *testing.T) {
	report := &tackle.RunReport{
		HookType: manifest.PreCommit,
		Packages: []tackle.PackageReport{{
			Name: "hooks",
			Report: &scheduler.Report{Results: []scheduler.HookResult{
				{Label: "lint", State: scheduler.Failed, ExitCode: 2},
				{Label: "fmt", State: scheduler.Successful},
				{Label: "deploy", State: scheduler.Skipped, Blocked: true, Reason: "no condition clause holds"},
			}},
		}},
	}

	out := RenderReport(report)
	assert.Contains(t, out, "exit code 2")
	assert.Contains(t, out, "no condition clause holds")
	assert.Contains(t, out, "1 successful, 1 failed, 1 skipped")
}

func TestRenderError(t *testing.T) {
	assert.Contains(t, RenderError(errors.New("boom")), "boom")
}
