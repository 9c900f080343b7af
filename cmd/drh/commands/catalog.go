package commands

import (
	"fmt"
	"strconv"

	"drh-client/internal/domain"
	"drh-client/internal/export"
	"drh-client/internal/service"

	"github.com/spf13/cobra"
)

func (c *cli) tagsCommand() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List or show entry and region tags.",
	}
	cmd.PersistentFlags().StringVar(&kind, "kind", string(service.EntryTags), "tag kind: entry or region")

	var search listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List one page of tags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := search.params()
			if err != nil {
				return err
			}
			page, err := c.app.Catalog.Tags(cmd.Context(), service.TagKind(kind), params)
			if err != nil {
				return err
			}
			printPageInfo(cmd, len(page.Rows), page.Count, page.Next)
			return c.render(cmd, export.Tags(page.Rows), page)
		},
	}
	search.register(list.Flags())

	show := &cobra.Command{
		Use:   "show <tag-id>",
		Short: "Show one tag.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			row, err := c.app.Catalog.Tag(cmd.Context(), service.TagKind(kind), id)
			if err != nil {
				return err
			}
			return c.render(cmd, export.Tags([]domain.TagRow{*row}), row)
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func (c *cli) regionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List or show regions.",
	}

	var search listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List one page of regions.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := search.params()
			if err != nil {
				return err
			}
			page, err := c.app.Catalog.Regions(cmd.Context(), params)
			if err != nil {
				return err
			}
			printPageInfo(cmd, len(page.Rows), page.Count, page.Next)
			return c.render(cmd, export.Regions(page.Rows), page)
		},
	}
	search.register(list.Flags())

	show := &cobra.Command{
		Use:   "show <region-id>",
		Short: "Show one region; use --format json for its geometry.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			row, err := c.app.Catalog.Region(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.render(cmd, export.Regions([]domain.RegionRow{*row}), row)
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func (c *cli) relationsCommand() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "relations",
		Short: "Map related questions to the smallest question id of their group.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				rels, err := c.app.Relations.Relations(cmd.Context())
				if err != nil {
					return err
				}
				return c.render(cmd, export.QuestionRelations(rels), rels)
			}
			related, err := c.app.Relations.RelatedQuestions(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(cmd, export.RelatedQuestions(related), related)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw relation pairs sorted by id")
	return cmd
}

func (c *cli) byQuestionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "by-question <question-name>",
		Short: "List every answer given to the question with this exact name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := c.app.Questions.EntriesByQuestion(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.render(cmd, export.QuestionAnswers(rows), rows)
		},
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
