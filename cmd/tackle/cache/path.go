package cache

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyezerfox/tackle/cmd/tackle/internal/cli"
)

func createPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache root, creating it if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := cli.NewTackle()
			if err != nil {
				return err
			}

			root, err := t.CachePath()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}
}
