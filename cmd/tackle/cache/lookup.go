package cache

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyezerfox/tackle/cmd/tackle/internal/cli"
	pkgcache "github.com/skyezerfox/tackle/pkg/cache"
)

func createLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <package>",
		Short: "Print the cached location of a package",
		Long:  `Print where a package lives in the cache. Exits with an error when it is not cached.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := cli.NewTackle()
			if err != nil {
				return err
			}

			path, cached, err := t.CacheLookup(args[0])
			if err != nil {
				return err
			}
			if !cached {
				return fmt.Errorf("%w: %s", pkgcache.ErrNotCached, args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

