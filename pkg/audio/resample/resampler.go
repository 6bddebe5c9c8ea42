// ABOUTME: Linear resampler for converting clip sample rates
// ABOUTME: Converts whole interleaved float buffers using linear interpolation
package resample

import (
	"fmt"

	"github.com/harperreed/soundbites/pkg/audio"
)

// Resampler performs linear interpolation to convert between sample rates
type Resampler struct {
	inputRate  int
	outputRate int
	channels   int
	ratio      float64
}

// New creates a new resampler
func New(inputRate, outputRate, channels int) (*Resampler, error) {
	if inputRate <= 0 || outputRate <= 0 {
		return nil, fmt.Errorf("invalid sample rates: %d -> %d", inputRate, outputRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("invalid channel count: %d", channels)
	}
	return &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		channels:   channels,
		ratio:      float64(inputRate) / float64(outputRate),
	}, nil
}

// OutputFrames returns how many frames Resample produces for inputFrames.
// Any non-empty input yields at least one frame.
func (r *Resampler) OutputFrames(inputFrames int) int {
	if inputFrames <= 0 {
		return 0
	}
	n := int(int64(inputFrames) * int64(r.outputRate) / int64(r.inputRate))
	if n < 1 {
		n = 1
	}
	return n
}

// Resample converts interleaved input to the output rate. Positions past the
// last input frame hold that frame's value.
func (r *Resampler) Resample(input []float32) []float32 {
	inputFrames := len(input) / r.channels
	outputFrames := r.OutputFrames(inputFrames)
	output := make([]float32, outputFrames*r.channels)

	if r.inputRate == r.outputRate {
		copy(output, input)
		return output
	}

	last := inputFrames - 1
	for j := 0; j < outputFrames; j++ {
		pos := float64(j) * r.ratio
		idx := int(pos)
		if idx >= last {
			copy(output[j*r.channels:(j+1)*r.channels], input[last*r.channels:(last+1)*r.channels])
			continue
		}

		frac := pos - float64(idx)
		for ch := 0; ch < r.channels; ch++ {
			s1 := float64(input[idx*r.channels+ch])
			s2 := float64(input[(idx+1)*r.channels+ch])
			output[j*r.channels+ch] = float32(s1*(1.0-frac) + s2*frac)
		}
	}
	return output
}

// Buffer returns buf converted to rate. A buffer already at rate is returned as is.
func Buffer(buf *audio.Buffer, rate int) (*audio.Buffer, error) {
	if buf.Format.SampleRate == rate {
		return buf, nil
	}
	r, err := New(buf.Format.SampleRate, rate, buf.Format.Channels)
	if err != nil {
		return nil, err
	}

	format := buf.Format
	format.SampleRate = rate
	return &audio.Buffer{Samples: r.Resample(buf.Samples), Format: format}, nil
}
