package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skyezerfox/tackle/cmd/tackle/internal/cli"
	"github.com/skyezerfox/tackle/pkg/tackle"
)

func createQueryCmd() *cobra.Command {
	var (
		forgeName string
		limit     int
	)

	queryCmd := &cobra.Command{
		Use:     "query <term>...",
		Aliases: []string{"search"},
		Short:   "Search for published hook packages",
		Long: `Search a forge for repositories tagged with the tackle-hooks topic.

Set GITHUB_TOKEN to raise the API rate limit.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := cli.NewTackle()
			if err != nil {
				return err
			}

			results, err := t.Query(cmd.Context(), strings.Join(args, " "), tackle.QueryOpts{
				Forge: forgeName,
				Limit: limit,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), cli.RenderSearchResults(results))
			return nil
		},
	}

	queryCmd.Flags().StringVar(&forgeName, "forge", "", "Forge to search (default github)")
	queryCmd.Flags().IntVarP(&limit, "limit", "n", tackle.DefaultQueryLimit, "Maximum number of results")

	return queryCmd
}

func createInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <package>",
		Short: "Show forge metadata of a hook package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := cli.NewTackle()
			if err != nil {
				return err
			}

			info, err := t.Info(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), cli.RenderPackageInfo(info))
			return nil
		},
	}
}
