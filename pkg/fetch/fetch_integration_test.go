//go:build integration

package fetch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyezerfox/tackle/pkg/fs"
	"github.com/skyezerfox/tackle/pkg/git"
	"github.com/skyezerfox/tackle/pkg/identifier"
)

func TestFetcher_Integration_FetchTwice(t *testing.T) {
	source := git.SetupTestRepo(t, git.TestRepoSpec{
		Files: map[string]string{
			"package.toml": "name = \"demo\"\n[[hooks.precommit]]\nid = \"hello\"\ncommand = [\"echo\", \"hello\"]\n",
		},
	})
	project := t.TempDir()
	id := identifier.ID{Repository: "example.com/org/demo", SubPath: identifier.RootSubPath}

	f := NewFetcher(NewFetcherParams{FS: fs.NewFS(), Git: git.NewGit(), ProjectRoot: project})

	pkg, err := f.FetchFrom(context.Background(), id, source)
	require.NoError(t, err)
	assert.Equal(t, "demo", pkg.DisplayName(""))

	target := f.PackageDir(id)
	marker := filepath.Join(target, "marker")
	require.NoError(t, os.WriteFile(marker, []byte("keep"), 0644))

	_, err = f.FetchFrom(context.Background(), id, source)
	assert.ErrorIs(t, err, ErrAlreadyFetched)

	content, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))

	require.NoError(t, f.Remove("example.com/org/demo"))
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))

	_, err = f.FetchFrom(context.Background(), id, source)
	assert.NoError(t, err)
}

func TestFetcher_Integration_MissingManifest(t *testing.T) {
	source := git.SetupTestRepo(t, git.TestRepoSpec{})
	id := identifier.ID{Repository: "example.com/org/empty", SubPath: identifier.RootSubPath}

	f := NewFetcher(NewFetcherParams{FS: fs.NewFS(), Git: git.NewGit(), ProjectRoot: t.TempDir()})

	_, err := f.FetchFrom(context.Background(), id, source)
	assert.Error(t, err)
}

func TestFetcher_Integration_SubPathPackagesShareClone(t *testing.T) {
	source := git.SetupTestRepo(t, git.TestRepoSpec{
		Files: map[string]string{
			"package.toml":        "name = \"root\"\n[hooks]\n",
			"lint/package.toml":   "name = \"lint\"\n[[hooks.precommit]]\ncommand = [\"true\"]\n",
			"format/package.toml": "name = \"format\"\n[[hooks.precommit]]\ncommand = [\"true\"]\n",
		},
	})

	f := NewFetcher(NewFetcherParams{FS: fs.NewFS(), Git: git.NewGit(), ProjectRoot: t.TempDir()})

	lint, err := identifier.Canonicalize("example.com/team/hooks/lint")
	require.NoError(t, err)

	pkg, err := f.FetchFrom(context.Background(), lint, source)
	require.NoError(t, err)
	assert.Equal(t, "lint", pkg.DisplayName(""))

	pkg, err = f.Load("example.com/team/hooks/lint")
	require.NoError(t, err)
	assert.Equal(t, "lint", pkg.DisplayName(""))

	pkg, err = f.Load("example.com/team/hooks/format")
	require.NoError(t, err)
	assert.Equal(t, "format", pkg.DisplayName(""))

	pkg, err = f.Load("example.com/team/hooks")
	require.NoError(t, err)
	assert.Equal(t, "root", pkg.DisplayName(""))
}
