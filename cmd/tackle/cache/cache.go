// Package cache provides the global package cache commands for the tackle CLI.
package cache

import (
	"github.com/spf13/cobra"
)

// CreateCacheCmd creates the cache command with all its subcommands.
func CreateCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Global package cache commands",
		Long: `Commands for inspecting the global package cache, ~/.tackle by default.

The cache location can be changed with cache_dir in the configuration file
or the TACKLE_CACHE_DIR environment variable.`,
	}

	cacheCmd.AddCommand(createPathCmd(), createLookupCmd())

	return cacheCmd
}
