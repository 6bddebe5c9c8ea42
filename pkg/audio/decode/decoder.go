// ABOUTME: Decoder interface definition and file dispatch
// ABOUTME: Picks a decoder by file extension and reads the whole stream
package decode

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/soundbites/pkg/audio"
)

// Decoder decodes a complete audio stream to interleaved float samples
type Decoder interface {
	// Decode reads r to the end and returns the decoded buffer
	Decode(r io.Reader) (*audio.Buffer, error)
}

// CodecForPath maps a file extension to a codec name
func CodecForPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".wave":
		return "wav", nil
	case ".mp3":
		return "mp3", nil
	case ".flac":
		return "flac", nil
	case ".opus", ".ogg":
		return "opus", nil
	case ".pcm", ".raw":
		return "pcm", nil
	default:
		return "", fmt.Errorf("unsupported audio format: %q (supported: .wav, .mp3, .flac, .opus, .pcm)", ext)
	}
}

// New creates a decoder for codec. raw describes the stream layout for
// headerless "pcm" input and is ignored by container codecs.
func New(codec string, raw audio.Format) (Decoder, error) {
	switch codec {
	case "wav":
		return NewWAV(), nil
	case "mp3":
		return NewMP3(), nil
	case "flac":
		return NewFLAC(), nil
	case "opus":
		return NewOpus(), nil
	case "pcm":
		raw.Codec = "pcm"
		return NewPCM(raw)
	default:
		return nil, fmt.Errorf("unsupported codec: %s", codec)
	}
}

// Open decodes the audio file at path, choosing a decoder by extension
func Open(path string, raw audio.Format) (*audio.Buffer, error) {
	codec, err := CodecForPath(path)
	if err != nil {
		return nil, err
	}
	dec, err := New(codec, raw)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if codec != "wav" {
		// wav needs to seek; the others only stream
		r = bufio.NewReaderSize(f, 64*1024)
	}

	buf, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return buf, nil
}
