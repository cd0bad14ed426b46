// Package resolver resolves a package name and exact version against an ordered
// list of repository sources, and error definitions.
package resolver

import "errors"

// Error definitions for resolver package.
var (
	// ErrInternal signals a broken invariant inside a resolution attempt, such as a panic.
	ErrInternal = errors.New("internal resolver error")

	// ErrInvalidVersion is returned for a version that is not a full semantic version.
	ErrInvalidVersion = errors.New("invalid version")
)
