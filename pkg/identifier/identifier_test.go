//go:build unit

package identifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		repository string
		subPath    string
	}{
		{
			name:       "owner and repo get the default host",
			raw:        "skyezerfox/hooks",
			repository: "github.com/skyezerfox/hooks",
			subPath:    ".",
		},
		{
			name:       "host qualified with subpath",
			raw:        "github.com/skyezerfox/hooks/some/sub",
			repository: "github.com/skyezerfox/hooks",
			subPath:    "some/sub",
		},
		{
			name:       "custom host is left untouched",
			raw:        "mygitserver.com/skyezerfox/hooks",
			repository: "mygitserver.com/skyezerfox/hooks",
			subPath:    ".",
		},
		{
			name:       "unqualified with subpath",
			raw:        "skyezerfox/hooks/project",
			repository: "github.com/skyezerfox/hooks",
			subPath:    "project",
		},
		{
			name:       "custom host with deep subpath",
			raw:        "mygitserver.com/skyezerfox/hooks/deep/project",
			repository: "mygitserver.com/skyezerfox/hooks",
			subPath:    "deep/project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Canonicalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.repository, id.Repository)
			assert.Equal(t, tt.subPath, id.SubPath)
		})
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	inputs := []string{
		"skyezerfox/hooks",
		"github.com/skyezerfox/hooks/some/sub",
		"mygitserver.com/skyezerfox/hooks",
		"a1/b2/c3/d4",
	}

	for _, raw := range inputs {
		first, err := Canonicalize(raw)
		require.NoError(t, err)

		second, err := Canonicalize(first.Repository)
		require.NoError(t, err)

		assert.Equal(t, first.Repository, second.Repository, raw)
		assert.Equal(t, RootSubPath, second.SubPath, raw)
		assert.Len(t, strings.Split(second.Repository, "/"), 3, raw)
	}
}

func TestCanonicalize_Invalid(t *testing.T) {
	for _, raw := range []string{"", "hooks", "github.com/hooks", "skyezerfox//hooks"} {
		_, err := Canonicalize(raw)
		assert.ErrorIs(t, err, ErrInvalidIdentifier, raw)
	}
}

func TestIsHost(t *testing.T) {
	assert.True(t, IsHost("github.com"))
	assert.True(t, IsHost("my-git-server.io"))
	assert.False(t, IsHost("rust-lang"))
	assert.False(t, IsHost("skyezerfox"))
}

func TestID_CloneURLAndString(t *testing.T) {
	id, err := Canonicalize("skyezerfox/hooks/lint")
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/skyezerfox/hooks.git", id.CloneURL())
	assert.Equal(t, "github.com/skyezerfox/hooks/lint", id.String())
	assert.False(t, id.IsRoot())
}

func TestID_Segments(t *testing.T) {
	id, err := Canonicalize("gitlab.com/team/hooks/lint/go")
	require.NoError(t, err)

	assert.Equal(t, "gitlab.com", id.Host())
	assert.Equal(t, "team", id.Owner())
	assert.Equal(t, "hooks", id.Name())
	assert.Equal(t, "lint/go", id.SubPath)

	assert.Empty(t, ID{}.Name())
}
