// Package project manages the .tackle directory of a git repository: the
// project manifest of installed hook packages and the git hook shims, and
// error definitions.
package project

import "errors"

// Error definitions for project package.
var (
	ErrRepositoryDiscoveryFailed = errors.New("failed to discover git repository")
	ErrAlreadyInitialized        = errors.New("project is already initialized")
	ErrNotInitialized            = errors.New("project is not initialized, run 'tackle init'")
	ErrManifestRead              = errors.New("failed to read project manifest")
	ErrManifestWrite             = errors.New("failed to write project manifest")
	ErrHookNotInstalled          = errors.New("hook package is not installed")
	ErrHookAlreadyExists         = errors.New("git hook already exists and was not installed by tackle")
	ErrNotGitDirectory           = errors.New(".git directory not found")
)
