//go:build unit

package tackle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyezerfox/tackle/pkg/project"
)

func TestInit(t *testing.T) {
	tk, m := newTestTackle(t)

	shims := []string{testRoot + "/.git/hooks/pre-commit", testRoot + "/.git/hooks/post-commit"}
	m.project.EXPECT().Init().Return(nil)
	m.project.EXPECT().InstallShims().Return(shims, nil)

	result, err := tk.Init()
	require.NoError(t, err)
	assert.Equal(t, testRoot, result.Root)
	assert.Equal(t, shims, result.Shims)
}

func TestInit_ForeignHookIsKept(t *testing.T) {
	tk, m := newTestTackle(t)

	shims := []string{testRoot + "/.git/hooks/pre-commit"}
	m.project.EXPECT().Init().Return(nil)
	m.project.EXPECT().InstallShims().Return(shims,
		fmt.Errorf("%w: %s", project.ErrHookAlreadyExists, testRoot+"/.git/hooks/post-commit"))

	result, err := tk.Init()
	require.NoError(t, err)
	assert.Equal(t, shims, result.Shims)
}

func TestInit_AlreadyInitialized(t *testing.T) {
	tk, m := newTestTackle(t)

	m.project.EXPECT().Init().Return(project.ErrAlreadyInitialized)

	_, err := tk.Init()
	assert.ErrorIs(t, err, project.ErrAlreadyInitialized)
}

func TestInit_NotGitDirectory(t *testing.T) {
	tk, m := newTestTackle(t)

	m.project.EXPECT().Init().Return(nil)
	m.project.EXPECT().InstallShims().Return(nil, project.ErrNotGitDirectory)

	_, err := tk.Init()
	assert.ErrorIs(t, err, project.ErrNotGitDirectory)
}
