package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyezerfox/tackle/cmd/tackle/internal/cli"
)

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List installed hook packages",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := cli.NewTackle()
			if err != nil {
				return err
			}

			packages, err := t.List()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), cli.RenderPackages(packages))
			return nil
		},
	}
}
