package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harperreed/soundbites/internal/app"
	"github.com/harperreed/soundbites/pkg/audio/output"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var seg segmentationFlags
	var volume int

	cmd := &cobra.Command{
		Use:   "play <input> [index...]",
		Short: "Audition detected events through the speakers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices, err := parseIndices(args[1:])
			if err != nil {
				return err
			}

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

			splitter := app.New(runCfg, logger)
			buf, err := splitter.Load()
			if err != nil {
				return err
			}
			report, err := splitter.ScanBuffer(cmd.Context(), buf)
			if err != nil {
				return err
			}
			if len(report.Ranges) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sound events found")
				return nil
			}

			out := output.NewOto(logger)
			out.SetVolume(volume)
			defer out.Close()

			return splitter.Play(cmd.Context(), out, buf, report.Ranges, indices)
		},
	}

	seg.register(cmd)
	cmd.Flags().IntVar(&volume, "volume", 100, "Playback volume (0-100)")
	return cmd
}

func parseIndices(args []string) ([]int, error) {
	indices := make([]int, 0, len(args))
	for _, arg := range args {
		i, err := strconv.Atoi(arg)
		if err != nil || i < 0 {
			return nil, fmt.Errorf("invalid event index %q", arg)
		}
		indices = append(indices, i)
	}
	return indices, nil
}
