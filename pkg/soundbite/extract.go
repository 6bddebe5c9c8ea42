// ABOUTME: Clip extraction and the split driver loop
// ABOUTME: Copies each detected range into a clip and hands it to a sink in order
package soundbite

import (
	"context"
	"fmt"

	"github.com/harperreed/soundbites/pkg/audio"
)

// Clip is one extracted sound event
type Clip struct {
	Index   uint32 // zero-based emission order
	Range   Range
	Samples []float32 // interleaved like the source buffer
	Format  audio.Format
}

// Frames returns the number of frames in the clip
func (c Clip) Frames() int {
	if c.Format.Channels <= 0 {
		return 0
	}
	return len(c.Samples) / c.Format.Channels
}

// Buffer views the clip as an audio buffer sharing the same samples
func (c Clip) Buffer() *audio.Buffer {
	return &audio.Buffer{Samples: c.Samples, Format: c.Format}
}

// Sink receives clips as they are found
type Sink interface {
	WriteClip(clip Clip) error
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(clip Clip) error

// WriteClip calls f(clip)
func (f SinkFunc) WriteClip(clip Clip) error {
	return f(clip)
}

// ExtractClip copies frames r.Start..r.End of buf into a new clip
func ExtractClip(buf *audio.Buffer, r Range, index uint32) Clip {
	ch := buf.Format.Channels
	samples := make([]float32, r.Frames()*ch)
	copy(samples, buf.Samples[r.Start*ch:(r.End+1)*ch])

	return Clip{
		Index:   index,
		Range:   r,
		Samples: samples,
		Format:  buf.Format,
	}
}

// Prepare validates buf and cfg, estimates baselines and returns a ready Segmenter
func Prepare(ctx context.Context, buf *audio.Buffer, cfg Config) (*Segmenter, []Baseline, error) {
	if buf == nil {
		return nil, nil, fmt.Errorf("%w: nil buffer", ErrEmptyInput)
	}
	if err := checkBuffer(buf.Samples, buf.Format.Channels); err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		baselines []Baseline
		err       error
	)
	if cfg.ParallelBaseline {
		baselines, err = EstimateBaselinesParallel(ctx, buf.Samples, buf.Format.Channels)
	} else {
		baselines, err = EstimateBaselines(buf.Samples, buf.Format.Channels)
	}
	if err != nil {
		return nil, nil, err
	}

	seg, err := NewSegmenter(cfg, buf.Samples, buf.Format.Channels, baselines)
	if err != nil {
		return nil, nil, err
	}
	return seg, baselines, nil
}

// Split runs a full segmentation pass over buf and writes every clip to sink.
// It returns the number of clips written. Validation happens before the first
// clip is emitted; a sink error stops the pass.
func Split(ctx context.Context, buf *audio.Buffer, cfg Config, sink Sink) (int, error) {
	seg, _, err := Prepare(ctx, buf, cfg)
	if err != nil {
		return 0, err
	}
	return Emit(ctx, buf, seg, sink)
}

// Emit drains seg, extracting each range from buf and writing it to sink with
// indices starting at 0. seg must have been built over buf's samples.
func Emit(ctx context.Context, buf *audio.Buffer, seg *Segmenter, sink Sink) (int, error) {
	var index uint32
	for {
		if err := ctx.Err(); err != nil {
			return int(index), err
		}
		r, ok := seg.Next()
		if !ok {
			return int(index), nil
		}
		if err := sink.WriteClip(ExtractClip(buf, r, index)); err != nil {
			return int(index), fmt.Errorf("write clip %d: %w", index, err)
		}
		index++
	}
}

// Report is the result of a scan without extraction
type Report struct {
	Format    audio.Format
	Frames    int
	Baselines []Baseline
	Ranges    []Range
}

// Seconds converts a frame index to seconds, or 0 if the sample rate is unknown
func (r *Report) Seconds(frame int) float64 {
	if r.Format.SampleRate <= 0 {
		return 0
	}
	return float64(frame) / float64(r.Format.SampleRate)
}

// Scan runs segmentation and returns the baselines and ranges without copying samples
func Scan(ctx context.Context, buf *audio.Buffer, cfg Config) (*Report, error) {
	seg, baselines, err := Prepare(ctx, buf, cfg)
	if err != nil {
		return nil, err
	}
	return &Report{
		Format:    buf.Format,
		Frames:    buf.Frames(),
		Baselines: baselines,
		Ranges:    seg.All(),
	}, nil
}
