package main

import (
	"fmt"

	"github.com/kk-code-lab/capview/internal/app"
	"github.com/spf13/cobra"
)

func newDumpCmd(g *globalFlags) *cobra.Command {
	var (
		offset string
		lines  int
	)
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the annotated hex dump to stdout",
		Long: `Print the annotated hex dump without the interactive viewer. Header values
that fail validation are followed by '!'.`,
		Example: `  capview dump trace.cap
  capview dump -o 0x200 -n 16 trace.cap`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := g.options(args[0])
			start, err := parseOffset(offset)
			if err != nil {
				return err
			}
			opts.StartOffset = start
			if lines < 0 {
				return fmt.Errorf("lines must not be negative, got %d", lines)
			}
			if err := prepare(opts); err != nil {
				return err
			}

			logger, closer, err := app.NewLogger(g.logFile)
			if err != nil {
				return fmt.Errorf("cannot open log file: %w", err)
			}
			defer closer.Close()

			return writeDump(cmd.OutOrStdout(), opts, lines, logger)
		},
	}
	cmd.Flags().StringVarP(&offset, "offset", "o", "0", "start at the line holding this byte offset (decimal or 0x hex)")
	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "number of lines to print (0 for all)")
	return cmd
}
