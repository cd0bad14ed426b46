// Package fetch clones hook packages into a project's .tackle/hooks directory
// and loads their manifests, and error definitions.
package fetch

import "errors"

// Error definitions for fetch package.
var (
	// ErrAlreadyFetched is returned when the target directory already exists.
	ErrAlreadyFetched = errors.New("package already fetched")

	// ErrCloneFailed is returned when the package repository cannot be cloned.
	ErrCloneFailed = errors.New("failed to clone package repository")

	// ErrNotFetched is returned when removing a package that was never fetched.
	ErrNotFetched = errors.New("package not fetched")

	// ErrSubPathOutsideRepository is returned when a package subpath escapes its repository.
	ErrSubPathOutsideRepository = errors.New("package subpath is outside of its repository")
)
