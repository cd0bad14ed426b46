// Package configs provides the files written into a project by tackle init.
package configs

import _ "embed"

// DefaultProjectManifest is the initial .tackle/tackle.toml.
//
//go:embed tackle.toml
var DefaultProjectManifest []byte

// DefaultGitignore is the initial .tackle/.gitignore. Fetched packages are not committed.
//
//go:embed gitignore
var DefaultGitignore []byte
