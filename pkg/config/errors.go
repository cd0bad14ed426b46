package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrNoRepositories       = errors.New("repositories cannot be empty")
	ErrInvalidRepositoryURL = errors.New("invalid repository URL")
	ErrInvalidCloneTimeout  = errors.New("invalid clone_timeout")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("tackle configuration not found")
)
