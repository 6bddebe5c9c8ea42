// ABOUTME: Audio decoder package for multiple container support
// ABOUTME: Provides Decoder interface and implementations for WAV, MP3, FLAC, Opus, PCM
// Package decode reads whole audio files into float sample buffers.
//
// Supports: WAV (integer PCM), MP3, FLAC, Ogg Opus, headerless PCM
//
// All decoders return interleaved float32 samples normalised to [-1, 1)
// together with the source sample rate, channel count and bit depth.
//
// Example:
//
//	buf, err := decode.Open("field-recording.wav", audio.Format{})
//	fmt.Println(buf.Format, buf.Frames())
package decode
