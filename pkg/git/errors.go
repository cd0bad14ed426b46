// Package git provides the version-control client used to clone hook packages
// and inspect repositories, and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrCloneFailed        = errors.New("git clone failed")
	ErrRepositoryNotFound = errors.New("not a git repository")
	ErrNoWorkTree         = errors.New("repository has no work tree")
	ErrTagListFailed      = errors.New("failed to list tags")
)
