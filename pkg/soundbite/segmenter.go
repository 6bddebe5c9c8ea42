// ABOUTME: Sound event segmenter
// ABOUTME: Scans for onsets and walks outward to silence-run boundaries
package soundbite

import (
	"fmt"
	"math"
)

// Range is an inclusive span of frame indexes covering one sound event
type Range struct {
	Start int
	End   int
}

// Frames returns the number of frames covered by the range
func (r Range) Frames() int {
	return r.End - r.Start + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

// Segmenter turns an interleaved buffer into a sequence of sound event ranges.
//
// A Segmenter is a single sequential scan: each call to Next resumes one frame
// past the end of the previous event. It is not safe for concurrent use.
type Segmenter struct {
	samples   []float32
	channels  int
	frames    int
	baselines []Baseline

	fracSound        float64
	fracSilence      float64
	silenceRunLength int
	centered         bool

	cursor int
}

// NewSegmenter validates its inputs and returns a Segmenter positioned at frame 0
func NewSegmenter(cfg Config, samples []float32, channels int, baselines []Baseline) (*Segmenter, error) {
	if err := checkBuffer(samples, channels); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(baselines) != channels {
		return nil, fmt.Errorf("%w: %d baselines for %d channels",
			ErrMalformedBuffer, len(baselines), channels)
	}
	mode, _ := ParseOnsetMode(string(cfg.OnsetMode))

	return &Segmenter{
		samples:          samples,
		channels:         channels,
		frames:           len(samples) / channels,
		baselines:        baselines,
		fracSound:        cfg.FracSound,
		fracSilence:      cfg.FracSilence,
		silenceRunLength: cfg.SilenceRunLength,
		centered:         mode == OnsetCentered,
	}, nil
}

// Cursor returns the frame index the next search starts from
func (s *Segmenter) Cursor() int {
	return s.cursor
}

// Next finds the next sound event. It returns false once the buffer is exhausted.
func (s *Segmenter) Next() (Range, bool) {
	floor := s.cursor
	for s.cursor < s.frames {
		if !s.isOnset(s.cursor) {
			s.cursor++
			continue
		}

		onset := s.cursor
		r := Range{
			Start: s.scanBackward(onset, floor),
			End:   s.scanForward(onset),
		}
		s.cursor = r.End + 1
		return r, true
	}
	return Range{}, false
}

// All drains the segmenter and returns every remaining range
func (s *Segmenter) All() []Range {
	var ranges []Range
	for {
		r, ok := s.Next()
		if !ok {
			return ranges
		}
		ranges = append(ranges, r)
	}
}

// scanBackward walks down from onset until floor or a full silence run.
// The position after the last counted frame is the boundary, so a completed
// run leaves start one frame below it.
func (s *Segmenter) scanBackward(onset, floor int) int {
	pos, run := onset, 0
	for pos > floor && run < s.silenceRunLength {
		run = s.advanceRun(pos, run)
		pos--
	}
	return pos
}

// scanForward mirrors scanBackward up to the last frame
func (s *Segmenter) scanForward(onset int) int {
	last := s.frames - 1
	pos, run := onset, 0
	for pos < last && run < s.silenceRunLength {
		run = s.advanceRun(pos, run)
		pos++
	}
	return pos
}

func (s *Segmenter) advanceRun(frame, run int) int {
	if s.isSilent(frame) {
		return run + 1
	}
	return 0
}

// isOnset reports whether any channel crosses the sound threshold.
// A channel with zero magnitude is flat and never triggers.
func (s *Segmenter) isOnset(frame int) bool {
	base := frame * s.channels
	for c, bl := range s.baselines {
		if bl.Magnitude == 0 {
			continue
		}
		v := float64(s.samples[base+c])
		var diff float64
		if s.centered {
			diff = math.Abs(v - bl.Mean)
		} else {
			diff = math.Abs(v) - bl.Mean
		}
		if diff >= s.fracSound*bl.Magnitude {
			return true
		}
	}
	return false
}

// isSilent reports whether every channel sits within the silence threshold
func (s *Segmenter) isSilent(frame int) bool {
	base := frame * s.channels
	for c, bl := range s.baselines {
		diff := math.Abs(float64(s.samples[base+c]) - bl.Mean)
		if diff > s.fracSilence*bl.Magnitude {
			return false
		}
	}
	return true
}
