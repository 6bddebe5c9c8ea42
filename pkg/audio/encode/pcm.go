// ABOUTME: Raw PCM audio encoder
// ABOUTME: Encodes float samples to headerless little-endian PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/harperreed/soundbites/pkg/audio"
)

// PCMEncoder encodes PCM audio
type PCMEncoder struct {
	bitDepth int
}

// NewPCM creates a new PCM encoder. A bitDepth of 0 keeps the source depth.
func NewPCM(bitDepth int) (*PCMEncoder, error) {
	if bitDepth != 0 {
		if err := checkDepth(bitDepth); err != nil {
			return nil, err
		}
	}
	return &PCMEncoder{bitDepth: bitDepth}, nil
}

// Ext returns "pcm"
func (e *PCMEncoder) Ext() string { return "pcm" }

// Encode writes buf as raw PCM
func (e *PCMEncoder) Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	data, err := e.Bytes(buf)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("pcm write error: %w", err)
	}
	return nil
}

// Bytes converts the buffer's samples to PCM bytes
func (e *PCMEncoder) Bytes(buf *audio.Buffer) ([]byte, error) {
	depth, err := outputDepth(e.bitDepth, buf)
	if err != nil {
		return nil, err
	}

	width := depth / 8
	output := make([]byte, len(buf.Samples)*width)
	for i, s := range buf.Samples {
		v := audio.SampleToInt(s, depth)
		out := output[i*width:]
		switch depth {
		case 8:
			out[0] = byte(v + 128)
		case 16:
			binary.LittleEndian.PutUint16(out, uint16(int16(v)))
		case 24:
			b := audio.SampleTo24Bit(v)
			copy(out, b[:])
		case 32:
			binary.LittleEndian.PutUint32(out, uint32(v))
		}
	}
	return output, nil
}
