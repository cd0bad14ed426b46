package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyezerfox/tackle/cmd/tackle/internal/cli"
)

func createResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <name> <version>",
		Short: "Find the repository source holding a package version",
		Long: `Query every configured repository source for a tag equal to version and
print the location of the first source, in configuration order, that has it.

Example:
  tackle resolve org/hooks 1.2.0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := cli.NewTackle()
			if err != nil {
				return err
			}

			resolved, err := t.Resolve(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s@%s %s\n", resolved.Name, resolved.Version, cli.RenderPath(resolved.Location.String()))
			return nil
		},
	}
}
