package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kk-code-lab/capview/internal/app"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// globalFlags are shared by every command.
type globalFlags struct {
	bytesPerLine int
	noColor      bool
	noASCII      bool
	strict       bool
	logFile      string
}

func (g *globalFlags) options(path string) app.Options {
	opts := app.DefaultOptions()
	opts.Path = path
	opts.BytesPerLine = g.bytesPerLine
	opts.Color = !g.noColor
	opts.ShowASCII = !g.noASCII
	opts.Strict = g.strict
	return opts
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	var (
		offset   string
		debounce = app.DefaultDebounce
	)

	rootCmd := &cobra.Command{
		Use:   "capview [flags] <file>",
		Short: "Annotated hex viewer for capture files",
		Long: `capview shows a capture file as a scrollable hex dump. Every byte is
coloured by the structure it belongs to and the line where a file or record
header starts carries its decoded fields.

Examples:
  capview trace.cap                  # Open the interactive viewer
  capview -b 32 -o 0x400 trace.cap   # 32 bytes per line, start at 0x400
  capview dump -n 20 trace.cap       # Print the first 20 lines
  capview info trace.cap             # Summarise header and records`,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := g.options(args[0])
			opts.Debounce = debounce
			start, err := parseOffset(offset)
			if err != nil {
				return err
			}
			opts.StartOffset = start
			if err := prepare(opts); err != nil {
				return err
			}

			logger, closer, err := app.NewLogger(g.logFile)
			if err != nil {
				return fmt.Errorf("cannot open log file: %w", err)
			}
			defer closer.Close()

			if !stdoutIsTerminal() {
				logger.Printf("stdout is not a terminal, writing dump")
				return writeDump(cmd.OutOrStdout(), opts, 0, logger)
			}
			return runViewer(opts, logger)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&g.bytesPerLine, "bytes", "b", 16, fmt.Sprintf("bytes per line (1-%d)", app.MaxBytesPerLine))
	pf.BoolVar(&g.noColor, "no-color", false, "disable colours")
	pf.BoolVar(&g.noASCII, "no-ascii", false, "hide the ASCII column")
	pf.BoolVar(&g.strict, "strict", false, "reject files with a bad magic number or version")
	pf.StringVar(&g.logFile, "log-file", "", "append diagnostics to this file")

	rootCmd.Flags().StringVarP(&offset, "offset", "o", "0", "start at the line holding this byte offset (decimal or 0x hex)")
	rootCmd.Flags().DurationVar(&debounce, "debounce", app.DefaultDebounce, "ignore repeats of the same key within this interval")

	rootCmd.AddCommand(newDumpCmd(g))
	rootCmd.AddCommand(newInfoCmd(g))
	return rootCmd
}

func runViewer(opts app.Options, logger *log.Logger) error {
	viewer, err := app.NewApplication(opts, logger)
	if err != nil {
		return err
	}
	defer viewer.Close()
	return viewer.Run()
}

// prepare validates options and checks the file exists before anything
// touches the terminal.
func prepare(opts app.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(opts.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file does not exist: %s", opts.Path)
		}
		return err
	}
	return nil
}

func parseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	return int(n), nil
}

func writeDump(w io.Writer, opts app.Options, lines int, logger *log.Logger) error {
	doc, err := app.LoadDocument(opts, logger)
	if err != nil {
		return err
	}
	return app.Dump(w, doc, opts.StartOffset, lines)
}
