package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyezerfox/tackle/cmd/tackle/internal/cli"
)

func createInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Aliases: []string{"initialize"},
		Short:   "Initialize tackle in the current repository",
		Long: `Create .tackle/ with an empty tackle.toml, a hooks directory ignored by git,
and install the git hooks that call 'tackle run'.

Existing git hooks not written by tackle are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := cli.NewTackle()
			if err != nil {
				return err
			}

			result, err := t.Init()
			if err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized tackle in %s\n", cli.RenderPath(result.Root))
				for _, shim := range result.Shims {
					fmt.Fprintf(cmd.OutOrStdout(), "  installed %s\n", cli.RenderPath(shim))
				}
			}
			return nil
		},
	}
}
