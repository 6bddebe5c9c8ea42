package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harperreed/soundbites/internal/app"
	"github.com/harperreed/soundbites/internal/config"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var seg segmentationFlags
	var format string
	var bitDepth int
	var digits int
	var rate int

	cmd := &cobra.Command{
		Use:   "split <input> [output-base]",
		Short: "Write every sound event to its own file",
		Long: `Write every sound event to its own file.

Files are named <output-base><index>.<ext> with a zero-padded index, so
"soundbites split in.wav clips/bite" produces clips/bite00000.wav,
clips/bite00001.wav and so on. An output base that names an existing
directory or ends in a path separator writes unprefixed files into it.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			runCfg, err := seg.appConfig(cmd, cfg, args[0])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				runCfg.OutputDir, runCfg.OutputPrefix = splitOutputBase(args[1])
			}
			if cmd.Flags().Changed("format") {
				runCfg.OutputFormat = strings.ToLower(strings.TrimSpace(format))
			}
			if cmd.Flags().Changed("bit-depth") {
				runCfg.BitDepth = bitDepth
			}
			if cmd.Flags().Changed("digits") {
				if err := config.ValidateDigits(digits); err != nil {
					return fmt.Errorf("--digits %w", err)
				}
				runCfg.Digits = digits
			}
			if cmd.Flags().Changed("rate") {
				runCfg.SampleRate = rate
			}

			result, err := app.New(runCfg, logger).Split(cmd.Context())
			if result != nil {
				for _, path := range result.Files {
					fmt.Fprintln(cmd.OutOrStdout(), path)
				}
			}
			return err
		},
	}

	seg.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "wav", "Output format: wav or pcm")
	cmd.Flags().IntVar(&bitDepth, "bit-depth", 0, "Output bit depth (0 keeps the source depth)")
	cmd.Flags().IntVar(&digits, "digits", 5, "Width of the zero-padded clip index")
	cmd.Flags().IntVar(&rate, "rate", 0, "Resample clips to this rate in Hz (0 keeps the source rate)")
	return cmd
}

// splitOutputBase turns "dir/prefix" into its directory and file prefix
func splitOutputBase(base string) (string, string) {
	if base == "" {
		return ".", ""
	}
	if strings.HasSuffix(base, "/") || strings.HasSuffix(base, string(os.PathSeparator)) {
		return filepath.Clean(base), ""
	}
	if info, err := os.Stat(base); err == nil && info.IsDir() {
		return filepath.Clean(base), ""
	}
	return filepath.Dir(base), filepath.Base(base)
}
