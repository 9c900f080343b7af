package commands

import (
	"errors"
	"fmt"

	"drh-client/internal/domain"
	"drh-client/internal/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) answersCommand() *cobra.Command {
	var (
		search  listFlags
		store   bool
		refresh bool
	)
	cmd := &cobra.Command{
		Use:   "answers [entry-id...]",
		Short: "Flatten the answers of entries into one row per answer.",
		Long: `Fetches each entry, checks its structure and flattens every answer with its
category, group, question and answer-set context. Entries are given as ids or
selected with the search flags (one page of the entries list). Entries that
cannot be flattened are reported on stderr and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			answers := c.app.Answers

			var (
				table *domain.AnswerTable
				ids   []int64
				err   error
			)
			switch {
			case len(args) > 0:
				if ids, err = parseIDs(args); err != nil {
					return err
				}
				if refresh {
					if err := c.app.EntryCache.Invalidate(ctx, ids...); err != nil {
						c.app.Logger.Warn("Failed to invalidate cached entries", zap.Error(err))
					}
				}
				table, err = answers.AnswersForEntries(ctx, ids)
			case search.searching():
				params, perr := search.params()
				if perr != nil {
					return perr
				}
				table, err = answers.AnswersForSearch(ctx, params)
			default:
				return errors.New("give entry ids or at least one search flag")
			}
			if err != nil {
				return err
			}

			if len(table.Failures) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d entries could not be flattened:\n", len(table.Failures))
				if err := export.WriteTable(cmd.ErrOrStderr(), export.Failures(table.Failures)); err != nil {
					return err
				}
			}

			if store {
				run, err := answers.Store(ctx, table.EntryIDs, table)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "stored %d rows as run %s\n", run.RowCount, run.ID)
			}

			if err := c.render(cmd, export.AnswerRows(table.Rows), table); err != nil {
				return err
			}
			if table.AllFailed() {
				return errors.New("no entry could be flattened")
			}
			return nil
		},
	}
	search.register(cmd.Flags())
	cmd.Flags().BoolVar(&store, "store", false, "save the table in the database under a new run id")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "drop cached entry documents before fetching")
	return cmd
}
