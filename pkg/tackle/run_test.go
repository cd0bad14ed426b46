//go:build unit

package tackle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skyezerfox/tackle/pkg/executor"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/project"
	"github.com/skyezerfox/tackle/pkg/scheduler"
)

func runManifest() *project.Manifest {
	mf := &project.Manifest{}
	mf.Hooks.PreCommit = []project.InstalledHook{{URL: testURL}}
	return mf
}

func lintPackage() *manifest.Package {
	return &manifest.Package{
		Name: strPtr("lint-hooks"),
		Hooks: manifest.HookDefinitions{
			PreCommit: []manifest.HookDefinition{
				{ID: strPtr("lint"), Command: []string{"lint"}, Conditions: []manifest.HookCondition{{}}},
				{Command: []string{"notify"}, Conditions: []manifest.HookCondition{{Failed: []string{"lint"}}}},
				{Command: []string{"deploy"}, Conditions: []manifest.HookCondition{{Successful: []string{"lint"}}}},
			},
		},
	}
}

func TestRun(t *testing.T) {
	tk, m := newTestTackle(t)

	m.project.EXPECT().IsInitialized().Return(true, nil)
	m.project.EXPECT().ReadManifest().Return(runManifest(), nil)
	m.fs.EXPECT().Exists(testPackageDir).Return(true, nil)
	m.fetcher.EXPECT().Load(testURL).Return(lintPackage(), nil)
	gomock.InOrder(
		m.executor.EXPECT().Execute(gomock.Any(), executor.Command{Args: []string{"lint"}}).
			Return(executor.Result{Status: executor.StatusFailed, ExitCode: 1}, nil),
		m.executor.EXPECT().Execute(gomock.Any(), executor.Command{Args: []string{"notify"}}).
			Return(executor.Result{Status: executor.StatusSuccessful}, nil),
	)

	report, err := tk.Run(t.Context(), "pre-commit")
	require.NoError(t, err)
	assert.Equal(t, manifest.PreCommit, report.HookType)
	require.Len(t, report.Packages, 1)
	assert.Equal(t, "lint-hooks", report.Packages[0].Name)
	assert.True(t, report.Failed())
	assert.Equal(t, 1, report.Count(scheduler.Failed))
	assert.Equal(t, 1, report.Count(scheduler.Successful))
	assert.Equal(t, 1, report.Count(scheduler.Skipped))

	blocked := report.Packages[0].Report.Blocked()
	require.Len(t, blocked, 1)
	assert.Equal(t, []string{"deploy"}, blocked[0].Command)
}

func TestRun_PackageWithoutHooksOfType(t *testing.T) {
	tk, m := newTestTackle(t)

	mf := &project.Manifest{}
	mf.Hooks.PostCommit = []project.InstalledHook{{URL: testURL}}

	m.project.EXPECT().IsInitialized().Return(true, nil)
	m.project.EXPECT().ReadManifest().Return(mf, nil)
	m.fs.EXPECT().Exists(testPackageDir).Return(true, nil)
	m.fetcher.EXPECT().Load(testURL).Return(lintPackage(), nil)

	report, err := tk.Run(t.Context(), manifest.PostCommit)
	require.NoError(t, err)
	assert.Empty(t, report.Packages)
	assert.False(t, report.Failed())
}

func TestRun_FetchesMissingPackage(t *testing.T) {
	tk, m := newTestTackle(t)

	m.project.EXPECT().IsInitialized().Return(true, nil)
	m.project.EXPECT().ReadManifest().Return(runManifest(), nil)
	m.fs.EXPECT().Exists(testPackageDir).Return(false, nil)
	m.cache.EXPECT().LookupRepository(testID).Return("", false, nil)
	m.fetcher.EXPECT().Fetch(gomock.Any(), testURL).Return(testPackage(t), nil)
	m.fetcher.EXPECT().Load(testURL).Return(testPackage(t), nil)
	m.executor.EXPECT().Execute(gomock.Any(), executor.Command{Args: []string{"true"}}).
		Return(executor.Result{Status: executor.StatusSuccessful}, nil)

	report, err := tk.Run(t.Context(), manifest.PreCommit)
	require.NoError(t, err)
	assert.False(t, report.Failed())
	assert.Equal(t, 1, report.Count(scheduler.Successful))
}

func TestRun_Cancelled(t *testing.T) {
	tk, m := newTestTackle(t)
	ctx, cancel := context.WithCancel(t.Context())

	m.project.EXPECT().IsInitialized().Return(true, nil)
	m.project.EXPECT().ReadManifest().Return(runManifest(), nil)
	m.fs.EXPECT().Exists(testPackageDir).Return(true, nil)
	m.fetcher.EXPECT().Load(testURL).Return(lintPackage(), nil)
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ executor.Command) (executor.Result, error) {
			cancel()
			return executor.Result{}, ctx.Err()
		})

	report, err := tk.Run(ctx, manifest.PreCommit)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Len(t, report.Packages, 1)
}

func TestRun_UnknownHookType(t *testing.T) {
	tk, _ := newTestTackle(t)

	_, err := tk.Run(t.Context(), "pre-rebase")
	assert.ErrorIs(t, err, manifest.ErrUnknownHookType)
}
