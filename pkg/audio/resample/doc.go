// ABOUTME: Audio resampling package using linear interpolation
// ABOUTME: Converts clips between sample rates before they are written
// Package resample provides sample rate conversion for extracted clips.
//
// Uses linear interpolation over whole buffers. Handles both upsampling and
// downsampling.
//
// Example:
//
//	out, err := resample.Buffer(clip.Buffer(), 48000)
package resample
