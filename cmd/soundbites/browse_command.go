package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harperreed/soundbites/internal/app"
	"github.com/harperreed/soundbites/internal/logging"
	"github.com/harperreed/soundbites/internal/ui"
	"github.com/harperreed/soundbites/pkg/audio/output"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var seg segmentationFlags
	var logFile string

	cmd := &cobra.Command{
		Use:   "browse <input>",
		Short: "Browse and audition events interactively",
		Long: `Browse and audition events interactively.

When stdout is not a terminal this prints the same tables as "scan".
While the browser is open, logs go to --log-file or are discarded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			interactive := isTerminal(cmd.OutOrStdout())

			var logger *slog.Logger
			if interactive {
				var closeLog func() error
				logger, closeLog, err = tuiLogger(ctx, logFile)
				if err != nil {
					return err
				}
				defer func() { _ = closeLog() }()
			} else {
				logger, err = ctx.logger(cmd)
				if err != nil {
					return err
				}
			}
			runCfg, err := seg.appConfig(cmd, cfg, args[0])
			if err != nil {
				return err
			}

			splitter := app.New(runCfg, logger)
			buf, err := splitter.Load()
			if err != nil {
				return err
			}
			report, err := splitter.ScanBuffer(cmd.Context(), buf)
			if err != nil {
				return err
			}

			if !interactive {
				printScan(cmd.OutOrStdout(), newScanOutput(args[0], report))
				return nil
			}

			out := output.NewOto(logger)
			defer out.Close()

			play := func(index int) error {
				return splitter.Play(cmd.Context(), out, buf, report.Ranges, []int{index})
			}
			return ui.Run(ui.NewModel(filepath.Base(args[0]), report, play))
		},
	}

	seg.register(cmd)
	cmd.Flags().StringVar(&logFile, "log-file", "", "Append logs to this file while the browser is open")
	return cmd
}

// tuiLogger builds a logger that stays off the terminal the browser draws on.
// Without a path every record is discarded.
func tuiLogger(ctx *commandContext, path string) (*slog.Logger, func() error, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	if strings.TrimSpace(path) == "" {
		logger, err := logging.NewFromConfig(cfg, io.Discard)
		return logger, func() error { return nil }, err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := logging.NewFromConfig(cfg, f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
