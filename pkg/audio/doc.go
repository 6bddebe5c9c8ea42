// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and sample conversion functions
// Package audio provides the fundamental audio types shared by the decoders,
// the encoders and the segmentation core.
//
// This package defines:
//   - Format: Describes audio stream format (codec, sample rate, channels, bit depth)
//   - Buffer: Interleaved float32 samples plus their Format
//
// It also provides utilities for converting between integer PCM and floats:
//   - int16/24/32 ↔ float32 with clamping
//   - int32 ↔ packed 24-bit little-endian bytes
//
// Example:
//
//	buf := &audio.Buffer{
//	    Samples: samples,
//	    Format: audio.Format{
//	        Codec:      "wav",
//	        SampleRate: 44100,
//	        Channels:   2,
//	        BitDepth:   16,
//	    },
//	}
//
//	frames := buf.Frames()
//	s16 := audio.SampleToInt16(buf.Samples[0])
package audio
