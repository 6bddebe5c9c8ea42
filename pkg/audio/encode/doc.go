// ABOUTME: Audio encoder package for writing extracted clips
// ABOUTME: Provides Encoder interface and implementations for WAV and raw PCM
// Package encode writes float sample buffers to disk formats.
//
// Supports: WAV (8, 16, 24, 32-bit integer PCM), raw little-endian PCM
//
// Encoders clamp samples to full scale. A bit depth of 0 writes each buffer
// at the depth recorded in its Format.
//
// Example:
//
//	encoder, err := encode.New("wav", 0)
//	err = encoder.Encode(file, clip.Buffer())
package encode
