// ABOUTME: Split and scan orchestration for the command line
// ABOUTME: Coordinates decoding, segmentation, clip files and playback
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/soundbites/internal/sink"
	"github.com/harperreed/soundbites/pkg/audio"
	"github.com/harperreed/soundbites/pkg/audio/decode"
	"github.com/harperreed/soundbites/pkg/audio/encode"
	"github.com/harperreed/soundbites/pkg/audio/output"
	"github.com/harperreed/soundbites/pkg/soundbite"
)

// Config holds one run's settings
type Config struct {
	Input string
	// RawFormat describes headerless .pcm/.raw input; ignored for containers
	RawFormat    audio.Format
	Segmentation soundbite.Config

	OutputDir    string
	OutputPrefix string
	Digits       int
	OutputFormat string
	BitDepth     int
	SampleRate   int
}

// Result summarises a split run
type Result struct {
	RunID    string
	Format   audio.Format
	Ranges   []soundbite.Range
	Files    []string
	Duration time.Duration
}

// Splitter runs segmentation passes over one input file
type Splitter struct {
	config Config
	logger *slog.Logger
	runID  string

	// decodeFn is swapped in tests
	decodeFn func(path string, raw audio.Format) (*audio.Buffer, error)
}

// New creates a splitter with a fresh run ID
func New(config Config, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.New().String()

	return &Splitter{
		config:   config,
		logger:   logger.With("run_id", runID),
		runID:    runID,
		decodeFn: decode.Open,
	}
}

// RunID returns the identifier attached to every log line of this run
func (s *Splitter) RunID() string {
	return s.runID
}

// Load decodes the input file
func (s *Splitter) Load() (*audio.Buffer, error) {
	buf, err := s.decodeFn(s.config.Input, s.config.RawFormat)
	if err != nil {
		return nil, err
	}

	s.logger.Info("input loaded",
		"path", s.config.Input,
		"format", buf.Format.String(),
		"frames", buf.Frames(),
		"duration", buf.Duration(),
	)
	return buf, nil
}

// Scan decodes the input and returns its baselines and event ranges
func (s *Splitter) Scan(ctx context.Context) (*soundbite.Report, error) {
	buf, err := s.Load()
	if err != nil {
		return nil, err
	}
	return s.ScanBuffer(ctx, buf)
}

// ScanBuffer segments an already decoded buffer
func (s *Splitter) ScanBuffer(ctx context.Context, buf *audio.Buffer) (*soundbite.Report, error) {
	report, err := soundbite.Scan(ctx, buf, s.config.Segmentation)
	if err != nil {
		return nil, err
	}
	s.logBaselines(report.Baselines)
	for i, r := range report.Ranges {
		s.logger.Debug("found sound", "index", i, "start", r.Start, "end", r.End)
	}
	s.logger.Info("scan complete", "events", len(report.Ranges))
	return report, nil
}

// Split decodes the input and writes every event as its own file
func (s *Splitter) Split(ctx context.Context) (*Result, error) {
	started := time.Now()

	buf, err := s.Load()
	if err != nil {
		return nil, err
	}

	seg, baselines, err := soundbite.Prepare(ctx, buf, s.config.Segmentation)
	if err != nil {
		return nil, err
	}
	s.logBaselines(baselines)

	enc, err := encode.New(s.config.OutputFormat, s.config.BitDepth)
	if err != nil {
		return nil, err
	}
	files, err := sink.NewFiles(sink.Options{
		Dir:        s.config.OutputDir,
		Prefix:     s.config.OutputPrefix,
		Digits:     s.config.Digits,
		Encoder:    enc,
		SampleRate: s.config.SampleRate,
		Logger:     s.logger,
	})
	if err != nil {
		return nil, err
	}
	if err := files.Open(); err != nil {
		return nil, err
	}
	defer func() {
		if err := files.Close(); err != nil {
			s.logger.Warn("failed to release output directory", "error", err)
		}
	}()

	result := &Result{RunID: s.runID, Format: buf.Format}
	logged := soundbite.SinkFunc(func(clip soundbite.Clip) error {
		s.logger.Info("found sound",
			"index", clip.Index,
			"start", clip.Range.Start,
			"end", clip.Range.End,
			"frames", clip.Frames(),
		)
		result.Ranges = append(result.Ranges, clip.Range)
		return files.WriteClip(clip)
	})

	if _, err := soundbite.Emit(ctx, buf, seg, logged); err != nil {
		result.Files = files.Written()
		return result, err
	}

	result.Files = files.Written()
	result.Duration = time.Since(started)
	s.logger.Info("split complete",
		"clips", len(result.Files),
		"output_dir", s.config.OutputDir,
		"elapsed", result.Duration,
	)
	return result, nil
}

// Play auditions the selected events through out. A nil or empty indices
// slice plays every event in order.
func (s *Splitter) Play(ctx context.Context, out output.Output, buf *audio.Buffer, ranges []soundbite.Range, indices []int) error {
	if len(indices) == 0 {
		indices = make([]int, len(ranges))
		for i := range ranges {
			indices[i] = i
		}
	}

	if err := out.Open(buf.Format.SampleRate, buf.Format.Channels); err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	for _, i := range indices {
		if i < 0 || i >= len(ranges) {
			return fmt.Errorf("event %d out of range (have %d)", i, len(ranges))
		}
		clip := soundbite.ExtractClip(buf, ranges[i], uint32(i))
		s.logger.Info("playing event", "index", i, "range", ranges[i].String())
		if err := out.Play(ctx, clip.Samples); err != nil {
			return fmt.Errorf("play event %d: %w", i, err)
		}
	}
	return nil
}

func (s *Splitter) logBaselines(baselines []soundbite.Baseline) {
	for c, bl := range baselines {
		s.logger.Debug("channel baseline",
			"channel", c,
			"mean", bl.Mean,
			"magnitude", bl.Magnitude,
		)
	}
}
