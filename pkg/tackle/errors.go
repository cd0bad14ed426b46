// Package tackle ties the package cache, the resolver, the fetch pipeline,
// the project manifest and the hook scheduler into the operations of the
// tackle command line, and error definitions.
package tackle

import "errors"

// Error definitions for tackle package.
var (
	// ErrPackageAlreadyInstalled is returned when adding a package the project manifest already lists.
	ErrPackageAlreadyInstalled = errors.New("package is already installed")

	// ErrVersionNotFound is returned when no repository source holds the requested version.
	ErrVersionNotFound = errors.New("version not found in any repository source")

	// ErrHooksFailed is returned by callers that turn a failed run report into an exit status.
	ErrHooksFailed = errors.New("one or more hooks failed")
)
