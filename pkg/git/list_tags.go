package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ListTags lists the tag names of a local repository.
func (g *realGit) ListTags(repoPath string) ([]string, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRepositoryNotFound, repoPath, err)
	}

	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTagListFailed, err)
	}
	defer iter.Close()

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTagListFailed, err)
	}

	return tags, nil
}
