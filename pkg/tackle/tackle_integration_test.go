//go:build integration

package tackle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyezerfox/tackle/pkg/cache"
	"github.com/skyezerfox/tackle/pkg/config"
	"github.com/skyezerfox/tackle/pkg/dependencies"
	"github.com/skyezerfox/tackle/pkg/git"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/project"
	"github.com/skyezerfox/tackle/pkg/resolver"
	"github.com/skyezerfox/tackle/pkg/scheduler"
)

const integrationPackage = `name = "checks"

[[hooks.precommit]]
id = "ok"
command = ["true"]
conditions = [{}]

[[hooks.precommit]]
id = "after-ok"
command = ["false"]
conditions = [{ successful = ["ok"] }]

[[hooks.precommit]]
command = ["true"]
conditions = [{ failed = ["after-ok"] }]
`

var monorepoFiles = map[string]string{
	"package.toml":        "name = \"mono\"\n[hooks]\n",
	"lint/package.toml":   "name = \"lint\"\n[[hooks.precommit]]\nid = \"lint\"\ncommand = [\"true\"]\nconditions = [{}]\n",
	"format/package.toml": "name = \"format\"\n[[hooks.prepush]]\nid = \"format\"\ncommand = [\"true\"]\nconditions = [{}]\n",
}

// newIntegrationTackle wires the real stack against a fresh project and a
// cache already holding github.com/org/checks and the github.com/org/mono
// monorepo, so nothing touches the network.
func newIntegrationTackle(t *testing.T) (Tackle, string) {
	t.Helper()

	cacheRoot := t.TempDir()
	git.SetupTestRepo(t, git.TestRepoSpec{
		Dir:   filepath.Join(cacheRoot, "github.com", "org", "checks"),
		Files: map[string]string{manifest.FileName: integrationPackage},
		Tags:  []string{"1.0.0"},
	})
	git.SetupTestRepo(t, git.TestRepoSpec{
		Dir:   filepath.Join(cacheRoot, "github.com", "org", "mono"),
		Files: monorepoFiles,
	})

	projectRoot := git.SetupTestRepo(t, git.TestRepoSpec{})

	deps := dependencies.New().
		WithConfig(config.NewManager(filepath.Join(t.TempDir(), "config.yaml")))
	deps = deps.
		WithContext(project.NewContext(deps.Git, projectRoot)).
		WithCache(cache.NewCache(cache.NewCacheParams{FS: deps.FS, Git: deps.Git, Root: cacheRoot})).
		WithResolver(resolver.NewResolver(resolver.NewResolverParams{FS: deps.FS, Git: deps.Git}))

	tk, err := NewTackle(NewTackleParams{Dependencies: deps})
	require.NoError(t, err)

	return tk, projectRoot
}

func TestTackle_Lifecycle(t *testing.T) {
	tk, root := newIntegrationTackle(t)

	initResult, err := tk.Init()
	require.NoError(t, err)
	assert.Len(t, initResult.Shims, 3)
	assert.FileExists(t, filepath.Join(root, ".git", "hooks", "pre-commit"))

	added, err := tk.Add(t.Context(), "org/checks")
	require.NoError(t, err)
	assert.Equal(t, "checks", added.Manifest.DisplayName(""))
	assert.Contains(t, added.Source, filepath.Join("github.com", "org", "checks"))
	assert.FileExists(t, filepath.Join(root, ".tackle", "hooks", "github.com", "org", "checks", manifest.FileName))

	_, err = tk.Add(t.Context(), "github.com/org/checks")
	assert.ErrorIs(t, err, ErrPackageAlreadyInstalled)

	packages, err := tk.List()
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "github.com/org/checks", packages[0].URL)
	assert.True(t, packages[0].Fetched)
	assert.Contains(t, packages[0].Integrity, "sha256-")

	report, err := tk.Run(t.Context(), manifest.PreCommit)
	require.NoError(t, err)
	require.Len(t, report.Packages, 1)
	assert.True(t, report.Failed())
	assert.Equal(t, 2, report.Count(scheduler.Successful))
	assert.Equal(t, 1, report.Count(scheduler.Failed))

	hookType, err := tk.Remove("org/checks")
	require.NoError(t, err)
	assert.Equal(t, manifest.PreCommit, hookType)
	assert.NoDirExists(t, filepath.Join(root, ".tackle", "hooks", "github.com", "org", "checks"))

	packages, err = tk.List()
	require.NoError(t, err)
	assert.Empty(t, packages)
}

func TestTackle_SyncRestoresMissingPackage(t *testing.T) {
	tk, root := newIntegrationTackle(t)

	_, err := tk.Init()
	require.NoError(t, err)
	_, err = tk.Add(t.Context(), "org/checks", AddOpts{Version: "1.0.0"})
	require.NoError(t, err)

	fetched := filepath.Join(root, ".tackle", "hooks", "github.com", "org", "checks")
	require.NoError(t, os.RemoveAll(fetched))

	synced, err := tk.Sync(t.Context())
	require.NoError(t, err)
	require.Len(t, synced, 1)
	assert.Equal(t, "1.0.0", synced[0].Version)
	assert.DirExists(t, fetched)
}

func TestTackle_MonorepoSubPathPackages(t *testing.T) {
	tk, root := newIntegrationTackle(t)
	clone := filepath.Join(root, ".tackle", "hooks", "github.com", "org", "mono")

	_, err := tk.Init()
	require.NoError(t, err)

	lint, err := tk.Add(t.Context(), "org/mono/lint")
	require.NoError(t, err)
	assert.Equal(t, "lint", lint.Manifest.DisplayName(""))

	format, err := tk.Add(t.Context(), "org/mono/format", AddOpts{HookType: manifest.PrePush})
	require.NoError(t, err)
	assert.Equal(t, "format", format.Manifest.DisplayName(""))
	assert.NotEqual(t, lint.Package.Integrity, format.Package.Integrity)

	report, err := tk.Run(t.Context(), manifest.PreCommit)
	require.NoError(t, err)
	require.Len(t, report.Packages, 1)
	assert.Equal(t, "lint", report.Packages[0].Name)
	assert.Equal(t, 1, report.Count(scheduler.Successful))

	report, err = tk.Run(t.Context(), manifest.PrePush)
	require.NoError(t, err)
	require.Len(t, report.Packages, 1)
	assert.Equal(t, "format", report.Packages[0].Name)
	assert.Equal(t, 1, report.Count(scheduler.Successful))

	_, err = tk.Remove("org/mono/lint")
	require.NoError(t, err)
	assert.DirExists(t, clone)

	report, err = tk.Run(t.Context(), manifest.PrePush)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(scheduler.Successful))

	_, err = tk.Remove("org/mono/format")
	require.NoError(t, err)
	assert.NoDirExists(t, clone)
}

func TestTackle_NotInitialized(t *testing.T) {
	tk, _ := newIntegrationTackle(t)

	_, err := tk.List()
	assert.ErrorIs(t, err, project.ErrNotInitialized)
}
