package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/soundbites/internal/app"
	"github.com/harperreed/soundbites/internal/config"
	"github.com/harperreed/soundbites/pkg/audio"
	"github.com/harperreed/soundbites/pkg/soundbite"
)

// segmentationFlags holds per-run overrides of the [segmentation] section
type segmentationFlags struct {
	fracSound        float64
	fracSilence      float64
	silenceRunLength int
	onsetMode        string
	parallel         bool

	rawRate     int
	rawChannels int
	rawDepth    int
}

func (f *segmentationFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Float64Var(&f.fracSound, "frac-sound", soundbite.DefaultFracSound, "Fraction of peak deviation that starts an event")
	flags.Float64Var(&f.fracSilence, "frac-silence", soundbite.DefaultFracSilence, "Fraction of peak deviation treated as silence")
	flags.IntVar(&f.silenceRunLength, "silence-run", soundbite.DefaultSilenceRunLength, "Consecutive silent frames that bound an event")
	flags.StringVar(&f.onsetMode, "onset-mode", string(soundbite.OnsetRaw), "Onset test: raw or centered")
	flags.BoolVar(&f.parallel, "parallel", false, "Estimate channel baselines concurrently")

	flags.IntVar(&f.rawRate, "raw-rate", 44100, "Sample rate of headerless .pcm/.raw input")
	flags.IntVar(&f.rawChannels, "raw-channels", 2, "Channel count of headerless .pcm/.raw input")
	flags.IntVar(&f.rawDepth, "raw-bit-depth", 16, "Bit depth of headerless .pcm/.raw input")
}

// apply merges flags the user set explicitly over the loaded config
func (f *segmentationFlags) apply(cmd *cobra.Command, cfg *config.Config) (soundbite.Config, error) {
	seg := cfg.Soundbite()
	flags := cmd.Flags()

	if flags.Changed("frac-sound") {
		seg.FracSound = f.fracSound
	}
	if flags.Changed("frac-silence") {
		seg.FracSilence = f.fracSilence
	}
	if flags.Changed("silence-run") {
		seg.SilenceRunLength = f.silenceRunLength
	}
	if flags.Changed("onset-mode") {
		mode, err := soundbite.ParseOnsetMode(f.onsetMode)
		if err != nil {
			return soundbite.Config{}, err
		}
		seg.OnsetMode = mode
	}
	if flags.Changed("parallel") {
		seg.ParallelBaseline = f.parallel
	}

	if err := seg.Validate(); err != nil {
		return soundbite.Config{}, fmt.Errorf("segmentation flags: %w", err)
	}
	return seg, nil
}

func (f *segmentationFlags) rawFormat() audio.Format {
	return audio.Format{
		Codec:      "pcm",
		SampleRate: f.rawRate,
		Channels:   f.rawChannels,
		BitDepth:   f.rawDepth,
	}
}

// appConfig builds the run settings shared by every command
func (f *segmentationFlags) appConfig(cmd *cobra.Command, cfg *config.Config, input string) (app.Config, error) {
	seg, err := f.apply(cmd, cfg)
	if err != nil {
		return app.Config{}, err
	}
	return app.Config{
		Input:        input,
		RawFormat:    f.rawFormat(),
		Segmentation: seg,
		OutputDir:    cfg.Output.Dir,
		OutputPrefix: cfg.Output.Prefix,
		Digits:       cfg.Output.Digits,
		OutputFormat: cfg.Output.Format,
		BitDepth:     cfg.Output.BitDepth,
		SampleRate:   cfg.Output.SampleRate,
	}, nil
}
