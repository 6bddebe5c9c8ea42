// ABOUTME: Error taxonomy for the segmentation core
// ABOUTME: Sentinel errors for precondition violations, checked with errors.Is
package soundbite

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput reports a zero-length sample buffer or a zero channel count
	ErrEmptyInput = errors.New("empty input")

	// ErrMalformedBuffer reports a sample count that is not a whole number of frames
	ErrMalformedBuffer = errors.New("malformed buffer")

	// ErrInvalidConfiguration reports out-of-range tunables
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// checkBuffer validates the interleaved layout before any scan begins
func checkBuffer(samples []float32, channels int) error {
	if channels <= 0 {
		return fmt.Errorf("%w: channel count is %d", ErrEmptyInput, channels)
	}
	if len(samples) == 0 {
		return fmt.Errorf("%w: no samples", ErrEmptyInput)
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples is not a multiple of %d channels",
			ErrMalformedBuffer, len(samples), channels)
	}
	return nil
}
