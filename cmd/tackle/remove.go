package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyezerfox/tackle/cmd/tackle/internal/cli"
)

func createRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <package>",
		Aliases: []string{"rm", "uninstall"},
		Short:   "Remove a hook package",
		Long:    `Remove a hook package from the project manifest and delete its fetched copy.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := cli.NewTackle()
			if err != nil {
				return err
			}

			hookType, err := t.Remove(args[0])
			if err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s hooks\n", args[0], hookType.GitHookName())
			}
			return nil
		},
	}
}
