package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyezerfox/tackle/cmd/tackle/internal/cli"
)

func createSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch installed packages missing from .tackle/hooks",
		Long: `Fetch every package listed in .tackle/tackle.toml that is not present
under .tackle/hooks, as after a fresh clone of the project.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := cli.NewTackle()
			if err != nil {
				return err
			}

			synced, err := t.Sync(cmd.Context())
			if err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d package(s)\n", len(synced))
			}
			return nil
		},
	}
}
