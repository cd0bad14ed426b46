package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GetRepositoryRoot returns the root of the work tree containing path.
func (g *realGit) GetRepositoryRoot(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRepositoryNotFound, path, err)
	}

	worktree, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return "", fmt.Errorf("%w: %s", ErrNoWorkTree, path)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoWorkTree, err)
	}

	return worktree.Filesystem.Root(), nil
}
