// Package main provides the command-line interface for tackle.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/skyezerfox/tackle/cmd/tackle/cache"
	"github.com/skyezerfox/tackle/cmd/tackle/internal/cli"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tackle",
		Short: "Tackle - git hook package manager",
		Long: `Install, share and run git hooks as packages.

Hook packages are git repositories with a package.toml at their root. Tackle
fetches them into .tackle/hooks, records them in .tackle/tackle.toml and runs
them from the git hooks it installs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createInitCmd(),
		createAddCmd(),
		createRemoveCmd(),
		createListCmd(),
		createSyncCmd(),
		createQueryCmd(),
		createInfoCmd(),
		createResolveCmd(),
		createRunCmd(),
		cache.CreateCacheCmd(),
	)

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}
}
