package main

import (
	"fmt"

	"github.com/kk-code-lab/capview/internal/app"
	"github.com/spf13/cobra"
)

func newInfoCmd(g *globalFlags) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Summarise the file header and records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := g.options(args[0])
			if err := prepare(opts); err != nil {
				return err
			}

			logger, closer, err := app.NewLogger(g.logFile)
			if err != nil {
				return fmt.Errorf("cannot open log file: %w", err)
			}
			defer closer.Close()

			doc, err := app.LoadDocument(opts, logger)
			if err != nil {
				return err
			}
			return app.WriteInfo(cmd.OutOrStdout(), doc, opts.Path, count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "c", 10, "number of records to list (negative for all)")
	return cmd
}
