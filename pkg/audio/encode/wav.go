// ABOUTME: WAV audio encoder
// ABOUTME: Writes float samples as integer PCM WAV via go-audio/wav
package encode

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/harperreed/soundbites/pkg/audio"
)

// WAVEncoder writes integer PCM WAV files
type WAVEncoder struct {
	bitDepth int
}

// NewWAV creates a new WAV encoder. A bitDepth of 0 keeps the source depth.
func NewWAV(bitDepth int) (*WAVEncoder, error) {
	if bitDepth != 0 {
		if err := checkDepth(bitDepth); err != nil {
			return nil, err
		}
	}
	return &WAVEncoder{bitDepth: bitDepth}, nil
}

// Ext returns "wav"
func (e *WAVEncoder) Ext() string { return "wav" }

// Encode writes buf as a complete WAV file
func (e *WAVEncoder) Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	depth, err := outputDepth(e.bitDepth, buf)
	if err != nil {
		return err
	}
	if buf.Format.Channels <= 0 || buf.Format.SampleRate <= 0 {
		return fmt.Errorf("invalid clip format: %s", buf.Format)
	}

	data := make([]int, len(buf.Samples))
	for i, s := range buf.Samples {
		v := int(audio.SampleToInt(s, depth))
		if depth == 8 {
			// 8-bit WAV is unsigned
			v += 128
		}
		data[i] = v
	}

	enc := wav.NewEncoder(w, buf.Format.SampleRate, depth, buf.Format.Channels, 1)
	ib := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Format.Channels,
			SampleRate:  buf.Format.SampleRate,
		},
		Data:           data,
		SourceBitDepth: depth,
	}
	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("wav write error: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav finalize error: %w", err)
	}
	return nil
}
