// ABOUTME: Per-channel baseline estimation
// ABOUTME: Two-pass mean and maximum absolute deviation over the whole buffer
package soundbite

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// Baseline is the statistical reference for one channel
type Baseline struct {
	Mean      float64
	Magnitude float64 // max |sample - Mean| over all frames, never negative
}

// EstimateBaselines returns one Baseline per channel.
//
// Each channel takes two passes: the mean must be complete before deviations
// from it are measured.
func EstimateBaselines(samples []float32, channels int) ([]Baseline, error) {
	if err := checkBuffer(samples, channels); err != nil {
		return nil, err
	}

	baselines := make([]Baseline, channels)
	for c := 0; c < channels; c++ {
		baselines[c] = channelBaseline(samples, channels, c)
	}
	return baselines, nil
}

// EstimateBaselinesParallel is EstimateBaselines with one goroutine per channel.
// Results are identical to the sequential version.
func EstimateBaselinesParallel(ctx context.Context, samples []float32, channels int) ([]Baseline, error) {
	if err := checkBuffer(samples, channels); err != nil {
		return nil, err
	}

	baselines := make([]Baseline, channels)
	g, ctx := errgroup.WithContext(ctx)
	for c := 0; c < channels; c++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			baselines[c] = channelBaseline(samples, channels, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return baselines, nil
}

func channelBaseline(samples []float32, channels, c int) Baseline {
	frames := len(samples) / channels

	var sum float64
	for i := 0; i < frames; i++ {
		sum += float64(samples[i*channels+c])
	}
	mean := sum / float64(frames)

	var maxDiff float64
	for i := 0; i < frames; i++ {
		diff := math.Abs(float64(samples[i*channels+c]) - mean)
		if diff > maxDiff {
			maxDiff = diff
		}
	}

	return Baseline{Mean: mean, Magnitude: maxDiff}
}
