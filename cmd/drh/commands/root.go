// Package commands implements the drh command line client.
package commands

import (
	"fmt"
	"os"

	"drh-client/internal/app"
	"drh-client/internal/config"
	"drh-client/internal/logger"

	"github.com/spf13/cobra"
)

const annotationNeedsDB = "needs-db"

// cli carries the state shared by every subcommand of one invocation.
type cli struct {
	app         *app.App
	format      string
	out         string
	logLevel    string
	concurrency int
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "drh",
		Short:         "drh reads and writes the Database of Religious History and flattens entries into answer tables.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.format, "format", "f", "table", "output format: table, csv or json")
	flags.StringVarP(&c.out, "out", "o", "", "write output to this file instead of stdout")
	flags.StringVar(&c.logLevel, "log-level", "", "override logger.level")
	flags.IntVar(&c.concurrency, "concurrency", 0, "override batch.concurrency")

	root.AddCommand(
		c.answersCommand(),
		c.entriesCommand(),
		c.tagsCommand(),
		c.regionsCommand(),
		c.relationsCommand(),
		c.byQuestionCommand(),
		c.writeCommand(),
		c.runsCommand(),
		c.cacheCommand(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Logger.Level = c.logLevel
	}
	if c.concurrency > 0 {
		cfg.Batch.Concurrency = c.concurrency
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return err
	}

	opts := app.Options{WithDB: cmd.Annotations[annotationNeedsDB] == "true"}
	if store, err := cmd.Flags().GetBool("store"); err == nil && store {
		opts.WithDB = true
	}
	c.app, err = app.New(cmd.Context(), cfg, logger.Get(), opts)
	return err
}

func (c *cli) teardown() error {
	defer logger.Sync()
	if c.app == nil {
		return nil
	}
	return c.app.Close()
}
