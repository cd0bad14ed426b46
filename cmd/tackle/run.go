package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyezerfox/tackle/cmd/tackle/internal/cli"
	"github.com/skyezerfox/tackle/pkg/manifest"
	"github.com/skyezerfox/tackle/pkg/tackle"
)

func createRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <hook> [git hook arguments...]",
		Short: "Run the installed hooks of a git hook",
		Long: `Run every package installed under a git hook. This is what the git hooks
installed by 'tackle init' call; the extra arguments git passes are ignored.

Example:
  tackle run pre-commit`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := cli.NewTackle()
			if err != nil {
				return err
			}

			report, err := t.Run(cmd.Context(), manifest.HookType(args[0]))
			if report != nil && !cli.Quiet && len(report.Packages) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), cli.RenderReport(report))
			}
			if err != nil {
				return err
			}

			if report.Failed() {
				return tackle.ErrHooksFailed
			}
			return nil
		},
	}
}
