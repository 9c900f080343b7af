package commands

import (
	"fmt"

	"drh-client/internal/dto"
	"drh-client/internal/export"

	"github.com/spf13/cobra"
)

func (c *cli) runsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Read answer tables stored with answers --store.",
	}
	cmd.AddCommand(&cobra.Command{
		Use:         "show <run-id>",
		Short:       "Print the rows of a stored run.",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationNeedsDB: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			run, rows, err := c.app.Answers.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "run %s: %d entries, %d rows, %d failures, created %s\n",
				run.ID, len(run.EntryIDs), run.RowCount, run.Failures, run.CreatedAt.Format("2006-01-02 15:04:05"))
			return c.render(cmd, export.AnswerRows(rows), dto.RunAnswersResponse{Run: run, Rows: rows})
		},
	})
	return cmd
}
