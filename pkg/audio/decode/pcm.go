// ABOUTME: Raw PCM audio decoder
// ABOUTME: Decodes headerless little-endian 8/16/24/32-bit PCM to float samples
package decode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/harperreed/soundbites/pkg/audio"
)

// PCMDecoder decodes headerless PCM audio
type PCMDecoder struct {
	format audio.Format
}

// NewPCM creates a new PCM decoder. The format must carry channels, sample
// rate and bit depth since raw streams have no header.
func NewPCM(format audio.Format) (*PCMDecoder, error) {
	if format.Codec != "pcm" {
		return nil, fmt.Errorf("invalid codec for PCM decoder: %s", format.Codec)
	}

	switch format.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 8, 16, 24, 32)", format.BitDepth)
	}

	if format.Channels <= 0 {
		return nil, fmt.Errorf("raw PCM needs a channel count, got %d", format.Channels)
	}

	return &PCMDecoder{
		format: format,
	}, nil
}

// Decode converts PCM bytes to float samples. A trailing partial sample is dropped.
func (d *PCMDecoder) Decode(r io.Reader) (*audio.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	return &audio.Buffer{
		Samples: d.convert(data),
		Format:  d.format,
	}, nil
}

func (d *PCMDecoder) convert(data []byte) []float32 {
	width := d.format.BitDepth / 8
	numSamples := len(data) / width
	samples := make([]float32, numSamples)

	for i := 0; i < numSamples; i++ {
		b := data[i*width:]
		switch d.format.BitDepth {
		case 8:
			// unsigned, 128 midpoint
			samples[i] = float32(int(b[0])-128) / 128
		case 16:
			samples[i] = audio.SampleFromInt16(int16(binary.LittleEndian.Uint16(b)))
		case 24:
			samples[i] = audio.SampleFromInt(audio.SampleFrom24Bit([3]byte{b[0], b[1], b[2]}), 24)
		case 32:
			samples[i] = audio.SampleFromInt(int32(binary.LittleEndian.Uint32(b)), 32)
		}
	}
	return samples
}
