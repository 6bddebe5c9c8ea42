// ABOUTME: Audio output interface tests
// ABOUTME: Verifies Output implementation and sample preparation without a device
package output

import (
	"context"
	"encoding/binary"
	"math"
	"testing"
)

func TestOtoImplementsOutput(t *testing.T) {
	var _ Output = (*Oto)(nil)
}

func TestOtoPlayBeforeOpen(t *testing.T) {
	out := NewOto(nil)
	if err := out.Play(context.Background(), []float32{0}); err == nil {
		t.Error("expected error playing on an unopened output")
	}
}

func TestOtoVolumeBounds(t *testing.T) {
	out := NewOto(nil)
	out.SetVolume(150)
	if out.Volume() != 100 {
		t.Errorf("expected volume clamped to 100, got %d", out.Volume())
	}
	out.SetVolume(-5)
	if out.Volume() != 0 {
		t.Errorf("expected volume clamped to 0, got %d", out.Volume())
	}
}

func TestApplyVolume(t *testing.T) {
	tests := []struct {
		name     string
		volume   int
		muted    bool
		input    []float32
		expected []float32
	}{
		{"full volume", 100, false, []float32{0.5, -0.5}, []float32{0.5, -0.5}},
		{"half volume", 50, false, []float32{0.5, -1}, []float32{0.25, -0.5}},
		{"muted", 100, true, []float32{0.5, -0.5}, []float32{0, 0}},
		{"clipping", 100, false, []float32{1.5, -1.5}, []float32{1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := applyVolume(tt.input, tt.volume, tt.muted)
			for i := range tt.expected {
				if result[i] != tt.expected[i] {
					t.Errorf("sample %d: expected %v, got %v", i, tt.expected[i], result[i])
				}
			}
		})
	}
}

func TestFloatBytes(t *testing.T) {
	out := floatBytes([]float32{0.5, -1})
	if len(out) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(out))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(out[4:])); got != -1 {
		t.Errorf("second sample = %v, want -1", got)
	}
}
