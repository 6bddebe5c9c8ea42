// ABOUTME: WAV audio decoder
// ABOUTME: Decodes RIFF/WAVE integer PCM to float samples via go-audio/wav
package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/harperreed/soundbites/pkg/audio"
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE

	// How far into the file the fmt chunk is looked for
	wavHeaderScanLimit = 64 * 1024
)

// WAVDecoder decodes WAV files
type WAVDecoder struct{}

// NewWAV creates a new WAV decoder
func NewWAV() *WAVDecoder {
	return &WAVDecoder{}
}

// Decode reads a whole WAV stream
func (d *WAVDecoder) Decode(r io.Reader) (*audio.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read WAV data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	sub, err := wavExtensibleSubFormat(rs)
	if err != nil {
		return nil, err
	}
	if sub != 0 && sub != wavFormatPCM {
		return nil, fmt.Errorf("unsupported WAVE_FORMAT_EXTENSIBLE subformat: %d (only integer PCM is supported)", sub)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}
	if dec.WavAudioFormat != wavFormatPCM && dec.WavAudioFormat != wavFormatExtensible {
		return nil, fmt.Errorf("unsupported WAV encoding: %d (only integer PCM is supported)", dec.WavAudioFormat)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	samples := make([]float32, len(pcm.Data))
	for i, v := range pcm.Data {
		if bitDepth == 8 {
			// 8-bit WAV is unsigned with a 128 midpoint
			samples[i] = float32(v-128) / 128
			continue
		}
		samples[i] = audio.SampleFromInt(int32(v), bitDepth)
	}

	return &audio.Buffer{
		Samples: samples,
		Format: audio.Format{
			Codec:      "wav",
			SampleRate: int(dec.SampleRate),
			Channels:   int(dec.NumChans),
			BitDepth:   bitDepth,
		},
	}, nil
}

// wavExtensibleSubFormat returns the subformat tag of a WAVE_FORMAT_EXTENSIBLE
// fmt chunk, or 0 for any other file. rs is rewound before returning.
func wavExtensibleSubFormat(rs io.ReadSeeker) (uint16, error) {
	header := make([]byte, wavHeaderScanLimit)
	n, err := io.ReadFull(rs, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return 0, fmt.Errorf("failed to read WAV header: %w", err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed to rewind WAV data: %w", err)
	}
	header = header[:n]

	if len(header) < 12 || string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return 0, nil
	}
	for pos := 12; pos+8 <= len(header); {
		id := string(header[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(header[pos+4 : pos+8]))
		body := pos + 8
		if id == "fmt " {
			// tag(2) ... cbSize(2) validBits(2) channelMask(4) subformat GUID(16)
			if size < 40 || body+26 > len(header) {
				return 0, nil
			}
			if binary.LittleEndian.Uint16(header[body:body+2]) != wavFormatExtensible {
				return 0, nil
			}
			return binary.LittleEndian.Uint16(header[body+24 : body+26]), nil
		}
		pos = body + size + size&1
	}
	return 0, nil
}
