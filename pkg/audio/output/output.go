// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for clip playback backends
package output

import "context"

// Output represents an audio output device
type Output interface {
	// Open initializes the output device
	Open(sampleRate, channels int) error

	// Play outputs interleaved float samples and blocks until they finish
	// or ctx is done
	Play(ctx context.Context, samples []float32) error

	// Close releases output resources
	Close() error
}
