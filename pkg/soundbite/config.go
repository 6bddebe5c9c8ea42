// ABOUTME: Segmentation tunables
// ABOUTME: Thresholds, silence run length and onset strategy passed per run
package soundbite

import (
	"fmt"
	"math"
	"strings"
)

// OnsetMode selects how the onset deviation of a sample is measured
type OnsetMode string

const (
	// OnsetRaw compares |sample| - mean against the sound threshold.
	// This is the historical behaviour and the default.
	OnsetRaw OnsetMode = "raw"

	// OnsetCentered compares |sample - mean|, the same measure used for silence.
	OnsetCentered OnsetMode = "centered"
)

const (
	DefaultFracSound        = 0.38
	DefaultFracSilence      = 0.01
	DefaultSilenceRunLength = 5
)

// ParseOnsetMode converts a config or flag value to an OnsetMode
func ParseOnsetMode(s string) (OnsetMode, error) {
	switch OnsetMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", OnsetRaw:
		return OnsetRaw, nil
	case OnsetCentered:
		return OnsetCentered, nil
	default:
		return "", fmt.Errorf("%w: unknown onset mode %q (want %q or %q)",
			ErrInvalidConfiguration, s, OnsetRaw, OnsetCentered)
	}
}

// Config holds the tunables for one segmentation run
type Config struct {
	// FracSound is the fraction of a channel's magnitude that triggers an onset
	// A channel with zero magnitude never triggers, even when FracSound is 0.
	FracSound float64
	// FracSilence is the fraction of a channel's magnitude under which a frame is silent
	FracSilence float64
	// SilenceRunLength is how many consecutive silent frames end a boundary search
	SilenceRunLength int
	// OnsetMode picks the onset deviation measure; empty means OnsetRaw
	OnsetMode OnsetMode
	// ParallelBaseline estimates channel baselines concurrently
	ParallelBaseline bool
}

// DefaultConfig returns the stock tunables
func DefaultConfig() Config {
	return Config{
		FracSound:        DefaultFracSound,
		FracSilence:      DefaultFracSilence,
		SilenceRunLength: DefaultSilenceRunLength,
		OnsetMode:        OnsetRaw,
	}
}

// Validate checks the tunables and returns an ErrInvalidConfiguration on failure
func (c Config) Validate() error {
	if c.FracSound < 0 || math.IsNaN(c.FracSound) {
		return fmt.Errorf("%w: frac_sound must be >= 0, got %v", ErrInvalidConfiguration, c.FracSound)
	}
	if c.FracSilence < 0 || math.IsNaN(c.FracSilence) {
		return fmt.Errorf("%w: frac_silence must be >= 0, got %v", ErrInvalidConfiguration, c.FracSilence)
	}
	if c.SilenceRunLength <= 0 {
		return fmt.Errorf("%w: silence_run_length must be > 0, got %d", ErrInvalidConfiguration, c.SilenceRunLength)
	}
	if _, err := ParseOnsetMode(string(c.OnsetMode)); err != nil {
		return err
	}
	return nil
}
