package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the Redis cache of entry documents.",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear <entry-id...>",
		Short: "Drop cached entry documents.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.app.Cache == nil {
				return errors.New("no cache configured (set redis.address)")
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			if err := c.app.EntryCache.Invalidate(cmd.Context(), ids...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "cleared %d cached entries\n", len(ids))
			return nil
		},
	})
	return cmd
}
