package git

import "context"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides the version-control operations tackle needs.
type Git interface {
	// Clone clones a repository to the specified path.
	Clone(ctx context.Context, params CloneParams) error

	// ListTags lists the tag names of a local repository.
	ListTags(repoPath string) ([]string, error)

	// GetCurrentBranch gets the current branch name. It is empty on a detached HEAD.
	GetCurrentBranch(repoPath string) (string, error)

	// GetRepositoryRoot returns the root of the work tree containing path.
	GetRepositoryRoot(path string) (string, error)
}

type realGit struct {
	auth authProvider
}

// NewGit creates a new Git instance using credentials found in the environment.
func NewGit() Git {
	return &realGit{
		auth: newEnvAuthProvider(),
	}
}
