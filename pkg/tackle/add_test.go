//go:build unit

package tackle

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skyezerfox/tackle/pkg/fetch"
	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/project"
	"github.com/skyezerfox/tackle/pkg/resolver"
)

// expectAddPreamble sets up an initialized project with an empty manifest.
func expectAddPreamble(m *testMocks) {
	m.project.EXPECT().IsInitialized().Return(true, nil)
	m.project.EXPECT().ReadManifest().Return(&project.Manifest{Version: project.ManifestVersion}, nil)
}

func expectIntegrity(m *testMocks) {
	m.fs.EXPECT().ReadFile(testPackageDir+"/package.toml").Return([]byte(testToml), nil)
}

func TestAdd_FetchesFromForge(t *testing.T) {
	tk, m := newTestTackle(t)
	pkg := testPackage(t)

	expectAddPreamble(m)
	m.cache.EXPECT().LookupRepository(testID).Return(testCachePath, false, nil)
	m.fetcher.EXPECT().Fetch(gomock.Any(), testURL).Return(pkg, nil)
	expectIntegrity(m)
	m.project.EXPECT().AddHook(manifest.PreCommit, project.InstalledHook{
		URL:       testURL,
		Integrity: testIntegrity(),
	}).Return(nil)

	result, err := tk.Add(t.Context(), "org/hooks")
	require.NoError(t, err)
	assert.Equal(t, manifest.PreCommit, result.Package.Type)
	assert.Equal(t, testURL, result.Package.URL)
	assert.True(t, result.Package.Fetched)
	assert.Equal(t, "https://github.com/org/hooks.git", result.Source)
	assert.Same(t, pkg, result.Manifest)
}

func TestAdd_CacheHitLinksCachedCopy(t *testing.T) {
	tk, m := newTestTackle(t)

	expectAddPreamble(m)
	m.cache.EXPECT().LookupRepository(testID).Return(testCachePath, true, nil)
	// No network clone: the cached repository is the clone source.
	m.fetcher.EXPECT().FetchFrom(gomock.Any(), testID, testCachePath).Return(testPackage(t), nil)
	expectIntegrity(m)
	m.project.EXPECT().AddHook(manifest.PostCommit, gomock.Any()).Return(nil)

	result, err := tk.Add(t.Context(), "github.com/org/hooks", AddOpts{HookType: "post-commit"})
	require.NoError(t, err)
	assert.Equal(t, testCachePath, result.Source)
	assert.Equal(t, manifest.PostCommit, result.Package.Type)
}

func TestAdd_VersionFromCache(t *testing.T) {
	tk, m := newTestTackle(t)

	expectAddPreamble(m)
	m.cache.EXPECT().LookupRepository(testID).Return(testCachePath, true, nil)
	m.git.EXPECT().ListTags(testCachePath).Return([]string{"1.0.0", "1.2.0"}, nil)
	m.fetcher.EXPECT().FetchTag(gomock.Any(), testID, testCachePath, "1.2.0").Return(testPackage(t), nil)
	expectIntegrity(m)
	m.project.EXPECT().AddHook(manifest.PreCommit, project.InstalledHook{
		URL:       testURL,
		Version:   "1.2.0",
		Integrity: testIntegrity(),
	}).Return(nil)

	result, err := tk.Add(t.Context(), "org/hooks", AddOpts{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", result.Package.Version)
}

func TestAdd_VersionResolvedFromSources(t *testing.T) {
	tk, m := newTestTackle(t)
	remote, err := url.Parse("https://mirror.example.com/org/hooks")
	require.NoError(t, err)

	expectAddPreamble(m)
	m.cache.EXPECT().LookupRepository(testID).Return(testCachePath, true, nil)
	m.git.EXPECT().ListTags(testCachePath).Return([]string{"1.0.0"}, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), "org/hooks", gomock.Any(), resolver.ResolveOpts{Host: "github.com"}).
		DoAndReturn(func(_ context.Context, name string, v resolver.Version, _ ...resolver.ResolveOpts) (*resolver.ResolvedPackage, error) {
			assert.Equal(t, "1.2.0", v.String())
			return &resolver.ResolvedPackage{Name: name, Version: v, Location: resolver.RemoteLocation(remote)}, nil
		})
	m.fetcher.EXPECT().FetchTag(gomock.Any(), testID, remote.String(), "1.2.0").Return(testPackage(t), nil)
	expectIntegrity(m)
	m.project.EXPECT().AddHook(manifest.PreCommit, gomock.Any()).Return(nil)

	result, err := tk.Add(t.Context(), "org/hooks", AddOpts{Version: "1.2.0"})
	require.NoError(t, err)
	assert.Equal(t, remote.String(), result.Source)
}

func TestAdd_VersionOnCustomHost(t *testing.T) {
	tk, m := newTestTackle(t)
	id := identifier.ID{Repository: "mygitserver.com/team/hooks", SubPath: identifier.RootSubPath}
	remote, err := url.Parse("https://mygitserver.com/team/hooks")
	require.NoError(t, err)
	v, err := resolver.ParseVersion("1.0.0")
	require.NoError(t, err)

	expectAddPreamble(m)
	m.cache.EXPECT().LookupRepository(id).Return("", false, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), "team/hooks", v, resolver.ResolveOpts{Host: "mygitserver.com"}).
		Return(&resolver.ResolvedPackage{Name: "team/hooks", Version: v, Location: resolver.RemoteLocation(remote)}, nil)
	m.fetcher.EXPECT().FetchTag(gomock.Any(), id, "https://mygitserver.com/team/hooks", "1.0.0").Return(testPackage(t), nil)
	m.fetcher.EXPECT().ManifestDir(id).Return("/work/project/.tackle/hooks/mygitserver.com/team/hooks", nil)
	m.fs.EXPECT().ReadFile("/work/project/.tackle/hooks/mygitserver.com/team/hooks/package.toml").Return([]byte(testToml), nil)
	m.project.EXPECT().AddHook(manifest.PreCommit, project.InstalledHook{
		URL:       "mygitserver.com/team/hooks",
		Version:   "1.0.0",
		Integrity: testIntegrity(),
	}).Return(nil)

	result, err := tk.Add(t.Context(), "mygitserver.com/team/hooks", AddOpts{Version: "1.0.0"})
	require.NoError(t, err)
	assert.Equal(t, "https://mygitserver.com/team/hooks", result.Source)
}

func TestAdd_VersionNotFound(t *testing.T) {
	tk, m := newTestTackle(t)

	expectAddPreamble(m)
	m.cache.EXPECT().LookupRepository(testID).Return("", false, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), "org/hooks", gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := tk.Add(t.Context(), "org/hooks", AddOpts{Version: "9.9.9"})
	assert.ErrorIs(t, err, ErrVersionNotFound)
}

func TestAdd_GlobalStoresInCache(t *testing.T) {
	tk, m := newTestTackle(t)

	expectAddPreamble(m)
	m.cache.EXPECT().LookupRepository(testID).Return("", false, nil)
	m.cache.EXPECT().Store(gomock.Any(), testID).Return(testCachePath, nil)
	m.fetcher.EXPECT().FetchFrom(gomock.Any(), testID, testCachePath).Return(testPackage(t), nil)
	expectIntegrity(m)
	m.project.EXPECT().AddHook(manifest.PreCommit, gomock.Any()).Return(nil)

	_, err := tk.Add(t.Context(), "org/hooks", AddOpts{Global: true})
	require.NoError(t, err)
}

func TestAdd_ReusesLeftoverFetch(t *testing.T) {
	tk, m := newTestTackle(t)

	expectAddPreamble(m)
	m.cache.EXPECT().LookupRepository(testID).Return("", false, nil)
	m.fetcher.EXPECT().Fetch(gomock.Any(), testURL).Return(nil, fmt.Errorf("%w: %s", fetch.ErrAlreadyFetched, testPackageDir))
	m.fetcher.EXPECT().Load(testURL).Return(testPackage(t), nil)
	expectIntegrity(m)
	m.project.EXPECT().AddHook(manifest.PreCommit, gomock.Any()).Return(nil)

	result, err := tk.Add(t.Context(), "org/hooks")
	require.NoError(t, err)
	assert.Equal(t, testPackageDir, result.Source)
}

func TestAdd_SubPathPackageOfFetchedRepository(t *testing.T) {
	tk, m := newTestTackle(t)
	lintURL := testURL + "/lint"
	lintID := identifier.ID{Repository: testURL, SubPath: "lint"}
	lintToml := "name = \"lint\"\n[[hooks.precommit]]\ncommand = [\"golangci-lint\", \"run\"]\nconditions = [{}]\n"
	lintPkg, err := manifest.Parse([]byte(lintToml))
	require.NoError(t, err)

	expectAddPreamble(m)
	m.cache.EXPECT().LookupRepository(lintID).Return("", false, nil)
	// The repository clone already exists for a sibling package.
	m.fetcher.EXPECT().Fetch(gomock.Any(), lintURL).Return(nil, fmt.Errorf("%w: %s", fetch.ErrAlreadyFetched, testPackageDir))
	m.fetcher.EXPECT().Load(lintURL).Return(lintPkg, nil)
	m.fetcher.EXPECT().PackageDir(lintID).Return(testPackageDir)
	m.fetcher.EXPECT().ManifestDir(lintID).Return(testPackageDir+"/lint", nil)
	m.fs.EXPECT().ReadFile(testPackageDir+"/lint/package.toml").Return([]byte(lintToml), nil)
	m.project.EXPECT().AddHook(manifest.PreCommit, project.InstalledHook{
		URL:       lintURL,
		Integrity: integrityOf(lintToml),
	}).Return(nil)

	result, err := tk.Add(t.Context(), "org/hooks/lint")
	require.NoError(t, err)
	assert.Equal(t, "lint", result.Manifest.DisplayName(""))
	assert.Equal(t, lintURL, result.Package.URL)
}

func TestAdd_AlreadyInstalled(t *testing.T) {
	tk, m := newTestTackle(t)

	m.project.EXPECT().IsInitialized().Return(true, nil)
	mf := &project.Manifest{}
	mf.Hooks.PrePush = []project.InstalledHook{{URL: testURL}}
	m.project.EXPECT().ReadManifest().Return(mf, nil)

	_, err := tk.Add(t.Context(), "org/hooks")
	assert.ErrorIs(t, err, ErrPackageAlreadyInstalled)
}

func TestAdd_NotInitialized(t *testing.T) {
	tk, m := newTestTackle(t)

	m.project.EXPECT().IsInitialized().Return(false, nil)

	_, err := tk.Add(t.Context(), "org/hooks")
	assert.ErrorIs(t, err, project.ErrNotInitialized)
}

func TestAdd_InvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		opts     AddOpts
		expected error
	}{
		{"identifier", "hooks", AddOpts{}, identifier.ErrInvalidIdentifier},
		{"hook type", "org/hooks", AddOpts{HookType: "pre-rebase"}, manifest.ErrUnknownHookType},
		{"version", "org/hooks", AddOpts{Version: "1.2"}, resolver.ErrInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, _ := newTestTackle(t)

			_, err := tk.Add(t.Context(), tt.raw, tt.opts)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestAdd_FetchFailureLeavesManifestAlone(t *testing.T) {
	tk, m := newTestTackle(t)
	cloneErr := errors.New("network down")

	expectAddPreamble(m)
	m.cache.EXPECT().LookupRepository(testID).Return("", false, nil)
	m.fetcher.EXPECT().Fetch(gomock.Any(), testURL).Return(nil, fmt.Errorf("%w: %w", fetch.ErrCloneFailed, cloneErr))

	_, err := tk.Add(t.Context(), "org/hooks")
	assert.ErrorIs(t, err, fetch.ErrCloneFailed)
}
