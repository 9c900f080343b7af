package commands

import (
	"fmt"
	"io"
	"os"

	"drh-client/internal/export"

	"github.com/spf13/cobra"
)

// render writes t, or v for JSON, to --out or the command's stdout.
func (c *cli) render(cmd *cobra.Command, t export.Table, v interface{}) error {
	format, err := export.ParseFormat(c.format)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if c.out != "" {
		f, err := os.Create(c.out)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return export.Write(w, format, t, v)
}
