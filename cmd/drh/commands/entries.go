package commands

import (
	"fmt"

	"drh-client/internal/export"

	"github.com/spf13/cobra"
)

func (c *cli) entriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List entries or show one entry's metadata.",
	}

	var search listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List one page of entries.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := search.params()
			if err != nil {
				return err
			}
			page, err := c.app.Catalog.Entries(cmd.Context(), params)
			if err != nil {
				return err
			}
			printPageInfo(cmd, len(page.Rows), page.Count, page.Next)
			return c.render(cmd, export.EntrySummaries(page.Rows), page)
		},
	}
	search.register(list.Flags())

	var tags bool
	show := &cobra.Command{
		Use:   "show <entry-id>",
		Short: "Show an entry's metadata, or its tags with --tags.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			detail, err := c.app.Catalog.Entry(cmd.Context(), id)
			if err != nil {
				return err
			}
			if tags {
				return c.render(cmd, export.EntryTags(detail.Tags), detail.Tags)
			}
			return c.render(cmd, export.EntryInfo(detail.Info), detail)
		},
	}
	show.Flags().BoolVar(&tags, "tags", false, "show the entry's tags instead of its metadata")

	cmd.AddCommand(list, show)
	return cmd
}

func printPageInfo(cmd *cobra.Command, shown, total int, more bool) {
	suffix := ""
	if more {
		suffix = ", more with --offset"
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "showing %d of %d%s\n", shown, total, suffix)
}
