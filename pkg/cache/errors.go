// Package cache maps canonical package identifiers to the global package cache
// under the user's home directory, and error definitions.
package cache

import "errors"

// Error definitions for cache package.
var (
	// ErrCacheRoot is returned when the cache root cannot be located or created.
	ErrCacheRoot = errors.New("failed to resolve cache root")

	// ErrSubPathOutsideRepository is returned when a package subpath escapes its repository.
	ErrSubPathOutsideRepository = errors.New("package subpath is outside of its repository")

	// ErrStoreFailed is returned when a repository cannot be cloned into the cache.
	ErrStoreFailed = errors.New("failed to store repository in cache")

	// ErrNotCached is returned for a repository that is not in the cache.
	ErrNotCached = errors.New("repository is not cached")
)
