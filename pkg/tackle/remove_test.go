//go:build unit

package tackle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyezerfox/tackle/pkg/fetch"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/project"
)

func TestRemove(t *testing.T) {
	tk, m := newTestTackle(t)

	m.project.EXPECT().IsInitialized().Return(true, nil)
	m.project.EXPECT().RemoveHook(testURL).Return(manifest.PrePush, nil)
	m.project.EXPECT().ReadManifest().Return(&project.Manifest{Version: project.ManifestVersion}, nil)
	m.fetcher.EXPECT().Remove(testURL).Return(nil)

	hookType, err := tk.Remove("org/hooks")
	require.NoError(t, err)
	assert.Equal(t, manifest.PrePush, hookType)
}

func TestRemove_AlreadyDeletedCopy(t *testing.T) {
	tk, m := newTestTackle(t)

	m.project.EXPECT().IsInitialized().Return(true, nil)
	m.project.EXPECT().RemoveHook(testURL).Return(manifest.PreCommit, nil)
	m.project.EXPECT().ReadManifest().Return(&project.Manifest{Version: project.ManifestVersion}, nil)
	m.fetcher.EXPECT().Remove(testURL).Return(fmt.Errorf("%w: %s", fetch.ErrNotFetched, testURL))

	_, err := tk.Remove("github.com/org/hooks")
	assert.NoError(t, err)
}

func TestRemove_NotInstalled(t *testing.T) {
	tk, m := newTestTackle(t)

	m.project.EXPECT().IsInitialized().Return(true, nil)
	m.project.EXPECT().RemoveHook(testURL).Return(manifest.HookType(""), project.ErrHookNotInstalled)

	_, err := tk.Remove("org/hooks")
	assert.ErrorIs(t, err, project.ErrHookNotInstalled)
}

func TestRemove_KeepsCloneSharedWithSubPathPackage(t *testing.T) {
	tk, m := newTestTackle(t)

	mf := &project.Manifest{Version: project.ManifestVersion}
	mf.Hooks.PreCommit = []project.InstalledHook{{URL: testURL + "/format"}}

	m.project.EXPECT().IsInitialized().Return(true, nil)
	m.project.EXPECT().RemoveHook(testURL+"/lint").Return(manifest.PreCommit, nil)
	m.project.EXPECT().ReadManifest().Return(mf, nil)
	// No fetcher.Remove: github.com/org/hooks/format still needs the clone.

	hookType, err := tk.Remove("org/hooks/lint")
	require.NoError(t, err)
	assert.Equal(t, manifest.PreCommit, hookType)
}

func TestRemove_LastSubPathPackageDeletesClone(t *testing.T) {
	tk, m := newTestTackle(t)

	mf := &project.Manifest{Version: project.ManifestVersion}
	mf.Hooks.PreCommit = []project.InstalledHook{{URL: "github.com/org/other"}}

	m.project.EXPECT().IsInitialized().Return(true, nil)
	m.project.EXPECT().RemoveHook(testURL+"/lint").Return(manifest.PreCommit, nil)
	m.project.EXPECT().ReadManifest().Return(mf, nil)
	m.fetcher.EXPECT().Remove(testURL + "/lint").Return(nil)

	_, err := tk.Remove("org/hooks/lint")
	assert.NoError(t, err)
}
