//go:build integration

package resolver

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyezerfox/tackle/pkg/fs"
	"github.com/skyezerfox/tackle/pkg/git"
)

func TestResolver_Integration_LocalSources(t *testing.T) {
	primaryBase := t.TempDir()
	mirrorBase := t.TempDir()

	git.SetupTestRepo(t, git.TestRepoSpec{
		Dir:  filepath.Join(primaryBase, "org", "hooks"),
		Tags: []string{"1.0.0"},
	})
	git.SetupTestRepo(t, git.TestRepoSpec{
		Dir:  filepath.Join(mirrorBase, "org", "hooks"),
		Tags: []string{"1.0.0", "2.0.0"},
	})

	primary := Repository{URL: &url.URL{Scheme: "file", Path: primaryBase + "/"}}
	mirror := Repository{URL: &url.URL{Scheme: "file", Path: mirrorBase + "/"}}

	r := NewResolver(NewResolverParams{
		FS:           fs.NewFS(),
		Git:          git.NewGit(),
		Repositories: []Repository{primary, mirror},
	})

	tests := []struct {
		version string
		want    *Repository
	}{
		{version: "1.0.0", want: &primary},
		{version: "2.0.0", want: &mirror},
		{version: "3.0.0", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			version, err := ParseVersion(tt.version)
			require.NoError(t, err)

			resolved, err := r.Resolve(context.Background(), "org/hooks", version)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, resolved)
				return
			}
			require.NotNil(t, resolved)
			assert.Equal(t, tt.want.String(), resolved.Source.String())
		})
	}
}
