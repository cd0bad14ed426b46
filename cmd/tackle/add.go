package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyezerfox/tackle/cmd/tackle/internal/cli"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/tackle"
)

func createAddCmd() *cobra.Command {
	var (
		version  string
		hookType string
		global   bool
	)

	addCmd := &cobra.Command{
		Use:     "add <package> [--version <version>] [--hook <type>] [--global]",
		Aliases: []string{"install", "i"},
		Short:   "Install a hook package",
		Long: `Install a hook package into the current project.

A package is [host/]owner/repo[/subpath]; the host defaults to github.com.
The global cache is used when it holds the package. With --version the
configured repository sources are searched for a matching tag.

Examples:
  tackle add org/hooks
  tackle add gitlab.com/team/checks --hook pre-push
  tackle add org/hooks --version 1.2.0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := cli.NewTackle()
			if err != nil {
				return err
			}

			result, err := t.Add(cmd.Context(), args[0], tackle.AddOpts{
				Version:  version,
				HookType: manifest.HookType(hookType),
				Global:   global,
			})
			if err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s hooks\n",
					result.Manifest.DisplayName(result.Package.URL), result.Package.Type.GitHookName())
			}
			return nil
		},
	}

	addCmd.Flags().StringVar(&version, "version", "", "Install the given tagged version")
	addCmd.Flags().StringVar(&hookType, "hook", manifest.PreCommit.GitHookName(), "Git hook to install the package under")
	addCmd.Flags().BoolVarP(&global, "global", "g", false, "Also keep the package in the global cache")

	return addCmd
}
