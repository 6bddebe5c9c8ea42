// ABOUTME: Tests for baseline estimation
// ABOUTME: Covers two-pass statistics, degenerate buffers and the parallel path
package soundbite

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestEstimateBaselines(t *testing.T) {
	// frames: (1, -2), (3, 2), (5, 0)
	samples := []float32{1, -2, 3, 2, 5, 0}

	baselines, err := EstimateBaselines(samples, 2)
	if err != nil {
		t.Fatalf("EstimateBaselines() error = %v", err)
	}
	if len(baselines) != 2 {
		t.Fatalf("expected 2 baselines, got %d", len(baselines))
	}

	want := []Baseline{
		{Mean: 3, Magnitude: 2},
		{Mean: 0, Magnitude: 2},
	}
	for c, bl := range baselines {
		if bl != want[c] {
			t.Errorf("channel %d: got %+v, want %+v", c, bl, want[c])
		}
	}
}

func TestEstimateBaselinesSingleFrame(t *testing.T) {
	baselines, err := EstimateBaselines([]float32{0.25, -0.75, 1}, 3)
	if err != nil {
		t.Fatalf("EstimateBaselines() error = %v", err)
	}
	for c, bl := range baselines {
		if bl.Magnitude != 0 {
			t.Errorf("channel %d: magnitude = %v, want 0", c, bl.Magnitude)
		}
	}
	if baselines[1].Mean != -0.75 {
		t.Errorf("channel 1 mean = %v, want -0.75", baselines[1].Mean)
	}
}

func TestEstimateBaselinesErrors(t *testing.T) {
	tests := []struct {
		name     string
		samples  []float32
		channels int
		want     error
	}{
		{"empty buffer", nil, 1, ErrEmptyInput},
		{"zero channels", []float32{1, 2}, 0, ErrEmptyInput},
		{"partial frame", []float32{1, 2, 3}, 2, ErrMalformedBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EstimateBaselines(tt.samples, tt.channels)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestEstimateBaselinesParallelMatchesSequential(t *testing.T) {
	const channels = 4
	samples := make([]float32, 1000*channels)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i)*0.37) * float64(i%channels+1) / 4)
	}

	seq, err := EstimateBaselines(samples, channels)
	if err != nil {
		t.Fatalf("EstimateBaselines() error = %v", err)
	}
	par, err := EstimateBaselinesParallel(context.Background(), samples, channels)
	if err != nil {
		t.Fatalf("EstimateBaselinesParallel() error = %v", err)
	}

	for c := range seq {
		if seq[c] != par[c] {
			t.Errorf("channel %d: sequential %+v != parallel %+v", c, seq[c], par[c])
		}
	}
}

func TestEstimateBaselinesParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EstimateBaselinesParallel(ctx, []float32{1, 2, 3, 4}, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
