//go:build unit

package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skyezerfox/tackle/pkg/git"
	gitmocks "github.com/skyezerfox/tackle/pkg/git/mocks"
)

func TestContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGit := gitmocks.NewMockGit(ctrl)

	ctx := NewContext(mockGit, "/work/project/src")

	mockGit.EXPECT().GetRepositoryRoot("/work/project/src").Return("/work/project", nil).Times(2)
	mockGit.EXPECT().GetCurrentBranch("/work/project").Return("feature/x", nil)

	root, err := ctx.DiscoverRoot()
	require.NoError(t, err)
	assert.Equal(t, "/work/project", root)

	branch, err := ctx.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "feature/x", branch)
}

func TestContext_DiscoveryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGit := gitmocks.NewMockGit(ctrl)

	ctx := NewContext(mockGit, "/tmp")
	mockGit.EXPECT().GetRepositoryRoot("/tmp").Return("", git.ErrRepositoryNotFound)

	_, err := ctx.DiscoverRoot()
	assert.ErrorIs(t, err, ErrRepositoryDiscoveryFailed)
	assert.ErrorIs(t, err, git.ErrRepositoryNotFound)
}
