package project

import (
	"fmt"

	"github.com/skyezerfox/tackle/pkg/git"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=context.go -destination=mocks/context.gen.go -package=mocks

// Context locates the repository a command runs in.
type Context interface {
	// DiscoverRoot returns the work tree root enclosing the working directory.
	DiscoverRoot() (string, error)
	// CurrentBranch returns the active branch name, empty on a detached HEAD.
	CurrentBranch() (string, error)
}

type gitContext struct {
	git     git.Git
	workDir string
}

// NewContext creates a Context that discovers the repository enclosing workDir.
func NewContext(g git.Git, workDir string) Context {
	return &gitContext{git: g, workDir: workDir}
}

func (c *gitContext) DiscoverRoot() (string, error) {
	root, err := c.git.GetRepositoryRoot(c.workDir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRepositoryDiscoveryFailed, err)
	}
	return root, nil
}

func (c *gitContext) CurrentBranch() (string, error) {
	root, err := c.DiscoverRoot()
	if err != nil {
		return "", err
	}
	return c.git.GetCurrentBranch(root)
}
