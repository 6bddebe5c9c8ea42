package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harperreed/soundbites/internal/app"
	"github.com/harperreed/soundbites/pkg/soundbite"
)

type scanBaseline struct {
	Channel   int     `json:"channel"`
	Mean      float64 `json:"mean"`
	Magnitude float64 `json:"magnitude"`
}

type scanEvent struct {
	Index        int     `json:"index"`
	Start        int     `json:"start"`
	End          int     `json:"end"`
	Frames       int     `json:"frames"`
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
}

type scanOutput struct {
	Input      string         `json:"input"`
	Codec      string         `json:"codec"`
	SampleRate int            `json:"sample_rate"`
	Channels   int            `json:"channels"`
	BitDepth   int            `json:"bit_depth"`
	Frames     int            `json:"frames"`
	Baselines  []scanBaseline `json:"baselines"`
	Events     []scanEvent    `json:"events"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var seg segmentationFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan <input>",
		Short: "List detected sound events without writing files",
		Args:  cobra.ExactArgs(1),
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

			report, err := app.New(runCfg, logger).Scan(cmd.Context())
			if err != nil {
				return err
			}

			out := newScanOutput(args[0], report)
			if asJSON {
				return writeJSON(cmd, out)
			}
			printScan(cmd.OutOrStdout(), out)
			return nil
		},
	}

	seg.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON instead of tables")
	return cmd
}

func newScanOutput(input string, report *soundbite.Report) scanOutput {
	out := scanOutput{
		Input:      input,
		Codec:      report.Format.Codec,
		SampleRate: report.Format.SampleRate,
		Channels:   report.Format.Channels,
		BitDepth:   report.Format.BitDepth,
		Frames:     report.Frames,
		Baselines:  make([]scanBaseline, 0, len(report.Baselines)),
		Events:     make([]scanEvent, 0, len(report.Ranges)),
	}
	for c, bl := range report.Baselines {
		out.Baselines = append(out.Baselines, scanBaseline{Channel: c, Mean: bl.Mean, Magnitude: bl.Magnitude})
	}
	for i, r := range report.Ranges {
		out.Events = append(out.Events, scanEvent{
			Index:        i,
			Start:        r.Start,
			End:          r.End,
			Frames:       r.Frames(),
			StartSeconds: report.Seconds(r.Start),
			EndSeconds:   report.Seconds(r.End + 1),
		})
	}
	return out
}

func printScan(w io.Writer, out scanOutput) {
	fmt.Fprintf(w, "%s: %s %d Hz, %d ch, %d-bit, %d frames\n\n",
		out.Input, out.Codec, out.SampleRate, out.Channels, out.BitDepth, out.Frames)

	baselineRows := make([][]string, 0, len(out.Baselines))
	for _, bl := range out.Baselines {
		baselineRows = append(baselineRows, []string{
			strconv.Itoa(bl.Channel),
			strconv.FormatFloat(bl.Mean, 'f', 6, 64),
			strconv.FormatFloat(bl.Magnitude, 'f', 6, 64),
		})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Channel", "Mean", "Magnitude"},
		baselineRows,
		[]columnAlignment{alignRight, alignRight, alignRight},
	))

	if len(out.Events) == 0 {
		fmt.Fprintln(w, "\nNo sound events found")
		return
	}

	eventRows := make([][]string, 0, len(out.Events))
	for _, ev := range out.Events {
		eventRows = append(eventRows, []string{
			strconv.Itoa(ev.Index),
			strconv.Itoa(ev.Start),
			strconv.Itoa(ev.End),
			strconv.Itoa(ev.Frames),
			fmt.Sprintf("%.3f", ev.StartSeconds),
			fmt.Sprintf("%.3f", ev.EndSeconds-ev.StartSeconds),
		})
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, renderTable(
		[]string{"#", "Start", "End", "Frames", "At (s)", "Length (s)"},
		eventRows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight, alignRight},
	))
	fmt.Fprintf(w, "%d event(s)\n", len(out.Events))
}
