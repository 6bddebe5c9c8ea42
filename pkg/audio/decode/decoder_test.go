// ABOUTME: Tests for decoder dispatch and container decoders
// ABOUTME: Covers extension mapping, OpusHead parsing and corrupt input handling
package decode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harperreed/soundbites/pkg/audio"
)

func TestCodecForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"a.wav", "wav", false},
		{"b.WAV", "wav", false},
		{"c.mp3", "mp3", false},
		{"d.flac", "flac", false},
		{"e.opus", "opus", false},
		{"f.ogg", "opus", false},
		{"g.raw", "pcm", false},
		{"h.aiff", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := CodecForPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CodecForPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CodecForPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewDispatch(t *testing.T) {
	for _, codec := range []string{"wav", "mp3", "flac", "opus"} {
		dec, err := New(codec, audio.Format{})
		if err != nil {
			t.Errorf("New(%q) error = %v", codec, err)
		}
		if dec == nil {
			t.Errorf("New(%q) returned nil decoder", codec)
		}
	}

	if _, err := New("pcm", audio.Format{Channels: 2, BitDepth: 16}); err != nil {
		t.Errorf("New(pcm) error = %v", err)
	}
	if _, err := New("pcm", audio.Format{}); err == nil {
		t.Error("New(pcm) without a layout should fail")
	}
	if _, err := New("aac", audio.Format{}); err == nil {
		t.Error("New(aac) should fail")
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("/nonexistent/input.wav", audio.Format{})
	if err == nil || !strings.Contains(err.Error(), "failed to open") {
		t.Errorf("expected open error, got %v", err)
	}
}

func TestOpusHeadChannels(t *testing.T) {
	head := append([]byte("OggS....OpusHead"), 1, 2, 0x38, 0x01)
	channels, err := opusHeadChannels(head)
	if err != nil {
		t.Fatalf("opusHeadChannels() error = %v", err)
	}
	if channels != 2 {
		t.Errorf("expected 2 channels, got %d", channels)
	}

	if _, err := opusHeadChannels([]byte("OggS no header here")); err == nil {
		t.Error("expected error for missing OpusHead")
	}
	if _, err := opusHeadChannels(append([]byte("OpusHead"), 1, 0)); err == nil {
		t.Error("expected error for zero channels")
	}
}

func TestCorruptContainers(t *testing.T) {
	garbage := bytes.Repeat([]byte{0x13, 0x37}, 64)

	if _, err := NewFLAC().Decode(bytes.NewReader(garbage)); err == nil {
		t.Error("FLAC decoder accepted garbage")
	}
	if _, err := NewOpus().Decode(bytes.NewReader(garbage)); err == nil {
		t.Error("Opus decoder accepted garbage")
	}
}
