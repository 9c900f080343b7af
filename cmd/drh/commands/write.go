package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"drh-client/internal/dto"

	"github.com/spf13/cobra"
)

func (c *cli) writeCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "write",
		Short: "Create entries, answer sets, tags and regions. Requires drh.api_key.",
	}
	cmd.PersistentFlags().StringVar(&file, "file", "", "JSON request body, - for stdin")
	_ = cmd.MarkPersistentFlagRequired("file")

	writeOne := func(use, short string, args cobra.PositionalArgs, send func(ctx context.Context, args []string, body []byte) (json.RawMessage, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				if c.app.Config.DRH.APIKey == "" {
					return errors.New("drh.api_key (or DRH_API_KEY) is required for writes")
				}
				body, err := readBody(cmd, file)
				if err != nil {
					return err
				}
				resp, err := send(cmd.Context(), args, body)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			},
		}
	}

	cmd.AddCommand(
		writeOne("entry", "Add an entry.", cobra.NoArgs, func(ctx context.Context, _ []string, body []byte) (json.RawMessage, error) {
			var req dto.NewEntryRequest
			if err := decodeBody(body, &req); err != nil {
				return nil, err
			}
			return c.app.Writes.AddEntry(ctx, &req)
		}),
		writeOne("answerset <entry-id>", "Add an answer set to an entry.", cobra.ExactArgs(1), func(ctx context.Context, args []string, body []byte) (json.RawMessage, error) {
			entryID, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			var req dto.NewAnswerSetRequest
			if err := decodeBody(body, &req); err != nil {
				return nil, err
			}
			return c.app.Writes.AddAnswerSet(ctx, entryID, &req)
		}),
		writeOne("entry-tag", "Add an entry tag.", cobra.NoArgs, func(ctx context.Context, _ []string, body []byte) (json.RawMessage, error) {
			var req dto.NewTagRequest
			if err := decodeBody(body, &req); err != nil {
				return nil, err
			}
			return c.app.Writes.AddEntryTag(ctx, &req)
		}),
		writeOne("region-tag", "Add a region tag.", cobra.NoArgs, func(ctx context.Context, _ []string, body []byte) (json.RawMessage, error) {
			var req dto.NewTagRequest
			if err := decodeBody(body, &req); err != nil {
				return nil, err
			}
			return c.app.Writes.AddRegionTag(ctx, &req)
		}),
		writeOne("region", "Add a region with a MultiPolygon geometry.", cobra.NoArgs, func(ctx context.Context, _ []string, body []byte) (json.RawMessage, error) {
			var req dto.NewRegionRequest
			if err := decodeBody(body, &req); err != nil {
				return nil, err
			}
			return c.app.Writes.AddRegion(ctx, &req)
		}),
	)
	return cmd
}

func readBody(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	body, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read request file: %w", err)
	}
	return body, nil
}

// decodeBody rejects unknown fields so that typos in request files are not
// silently dropped.
func decodeBody(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request file: %w", err)
	}
	return nil
}

func printJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, err = w.Write(raw)
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}
