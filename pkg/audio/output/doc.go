// ABOUTME: Audio output package for auditioning clips
// ABOUTME: Provides Output interface and an oto implementation
// Package output plays float sample buffers on the default audio device.
//
// The oto backend allows a single device context per process, so an Output
// is opened once with the source format and reused for every clip.
//
// Example:
//
//	out := output.NewOto(logger)
//	err := out.Open(44100, 2)
//	err = out.Play(ctx, clip.Samples)
package output
