// ABOUTME: Unit tests for WAV encoder
// ABOUTME: Writes clips to disk and reads them back with the decoder
package encode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/soundbites/pkg/audio"
	"github.com/harperreed/soundbites/pkg/audio/decode"
)

func encodeToFile(t *testing.T, enc Encoder, buf *audio.Buffer) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip."+enc.Ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if err := enc.Encode(f, buf); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	return path
}

func TestWAVEncoderRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		bitDepth int
		source   int
		want     int
	}{
		{"keep 16-bit source", 0, 16, 16},
		{"keep 24-bit source", 0, 24, 24},
		{"force 16-bit", 16, 24, 16},
		{"8-bit", 8, 16, 8},
		{"lossy source defaults to 16-bit", 0, 0, 16},
	}

	samples := []float32{0, 0.5, -0.5, 0.25, -1, 0}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := NewWAV(tt.bitDepth)
			if err != nil {
				t.Fatalf("NewWAV() failed: %v", err)
			}
			buf := &audio.Buffer{
				Samples: samples,
				Format:  audio.Format{SampleRate: 44100, Channels: 2, BitDepth: tt.source},
			}

			got, err := decode.Open(encodeToFile(t, enc, buf), audio.Format{})
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}

			if got.Format.BitDepth != tt.want {
				t.Errorf("bit depth = %d, want %d", got.Format.BitDepth, tt.want)
			}
			if got.Format.Channels != 2 || got.Format.SampleRate != 44100 {
				t.Errorf("format = %+v", got.Format)
			}
			if len(got.Samples) != len(samples) {
				t.Fatalf("expected %d samples, got %d", len(samples), len(got.Samples))
			}
			for i := range samples {
				if got.Samples[i] != samples[i] {
					t.Errorf("sample %d: got %v, want %v", i, got.Samples[i], samples[i])
				}
			}
		})
	}
}

func TestWAVEncoderRejectsBadFormat(t *testing.T) {
	enc, _ := NewWAV(16)
	path := filepath.Join(t.TempDir(), "bad.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	buf := &audio.Buffer{Samples: []float32{0}, Format: audio.Format{Channels: 0, SampleRate: 8000}}
	if err := enc.Encode(f, buf); err == nil {
		t.Error("expected error for zero channels")
	}
}

func TestNew(t *testing.T) {
	for _, codec := range []string{"wav", "pcm"} {
		enc, err := New(codec, 0)
		if err != nil {
			t.Fatalf("New(%q) error = %v", codec, err)
		}
		if enc.Ext() != codec {
			t.Errorf("New(%q).Ext() = %q", codec, enc.Ext())
		}
	}
	if _, err := New("mp3", 0); err == nil {
		t.Error("New(mp3) should fail")
	}
	if _, err := New("wav", 20); err == nil {
		t.Error("New(wav, 20) should fail")
	}
}
