// ABOUTME: Tests for the file-backed clip sink
// ABOUTME: Covers naming, locking and encoded output
package sink

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/soundbites/internal/logging"
	"github.com/harperreed/soundbites/pkg/audio"
	"github.com/harperreed/soundbites/pkg/audio/decode"
	"github.com/harperreed/soundbites/pkg/audio/encode"
	"github.com/harperreed/soundbites/pkg/soundbite"
)

func newTestSink(t *testing.T, dir string, codec string) *Files {
	t.Helper()
	enc, err := encode.New(codec, 0)
	if err != nil {
		t.Fatalf("encode.New() error = %v", err)
	}
	s, err := NewFiles(Options{Dir: dir, Prefix: "bite", Encoder: enc, Logger: logging.NewNop()})
	if err != nil {
		t.Fatalf("NewFiles() error = %v", err)
	}
	return s
}

func testClip(index uint32) soundbite.Clip {
	return soundbite.Clip{
		Index:   index,
		Range:   soundbite.Range{Start: 10, End: 12},
		Samples: []float32{0, 0, 0.5, -0.5, 0, 0},
		Format:  audio.Format{Codec: "wav", SampleRate: 8000, Channels: 2, BitDepth: 16},
	}
}

func TestFilesPath(t *testing.T) {
	s := newTestSink(t, "out", "wav")

	tests := []struct {
		index uint32
		want  string
	}{
		{0, filepath.Join("out", "bite00000.wav")},
		{42, filepath.Join("out", "bite00042.wav")},
		{123456, filepath.Join("out", "bite123456.wav")},
	}
	for _, tt := range tests {
		if got := s.Path(tt.index); got != tt.want {
			t.Errorf("Path(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestFilesWriteClip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	s := newTestSink(t, dir, "wav")

	if err := s.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	for i := uint32(0); i < 2; i++ {
		if err := s.WriteClip(testClip(i)); err != nil {
			t.Fatalf("WriteClip(%d) error = %v", i, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	written := s.Written()
	if len(written) != 2 {
		t.Fatalf("expected 2 files, got %v", written)
	}

	buf, err := decode.Open(written[1], audio.Format{})
	if err != nil {
		t.Fatalf("decode written clip: %v", err)
	}
	if buf.Frames() != 3 || buf.Format.Channels != 2 || buf.Format.SampleRate != 8000 {
		t.Errorf("unexpected clip contents: %d frames, %+v", buf.Frames(), buf.Format)
	}
	if buf.Samples[2] != 0.5 {
		t.Errorf("sample 2 = %v, want 0.5", buf.Samples[2])
	}

	if _, err := os.Stat(filepath.Join(dir, lockFileName)); !os.IsNotExist(err) {
		t.Errorf("lock file should be removed on close, stat err = %v", err)
	}
}

func TestFilesLockedDirectory(t *testing.T) {
	dir := t.TempDir()
	first := newTestSink(t, dir, "pcm")
	if err := first.Open(); err != nil {
		t.Fatalf("first Open() error = %v", err)
	}
	defer first.Close()

	second := newTestSink(t, dir, "pcm")
	err := second.Open()
	if !errors.Is(err, ErrDirLocked) {
		t.Fatalf("expected ErrDirLocked, got %v", err)
	}
}

func TestFilesResamplesClips(t *testing.T) {
	enc, err := encode.New("wav", 16)
	if err != nil {
		t.Fatalf("encode.New() error = %v", err)
	}
	s, err := NewFiles(Options{Dir: t.TempDir(), Encoder: enc, SampleRate: 16000, Logger: logging.NewNop()})
	if err != nil {
		t.Fatalf("NewFiles() error = %v", err)
	}
	if err := s.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	if err := s.WriteClip(testClip(0)); err != nil {
		t.Fatalf("WriteClip() error = %v", err)
	}

	buf, err := decode.Open(s.Path(0), audio.Format{})
	if err != nil {
		t.Fatalf("decode written clip: %v", err)
	}
	if buf.Format.SampleRate != 16000 || buf.Frames() != 6 {
		t.Errorf("expected 6 frames at 16kHz, got %d at %d", buf.Frames(), buf.Format.SampleRate)
	}
}

func TestFilesWriteBeforeOpen(t *testing.T) {
	s := newTestSink(t, t.TempDir(), "wav")
	if err := s.WriteClip(testClip(0)); err == nil {
		t.Fatal("expected error writing to an unopened sink")
	}
}

func TestFilesEncodeFailureRemovesFile(t *testing.T) {
	dir := t.TempDir()
	s := newTestSink(t, dir, "wav")
	if err := s.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	clip := testClip(0)
	clip.Format.SampleRate = 0
	if err := s.WriteClip(clip); err == nil {
		t.Fatal("expected encode error")
	}
	if _, err := os.Stat(s.Path(0)); !os.IsNotExist(err) {
		t.Errorf("partial file left behind, stat err = %v", err)
	}
}
