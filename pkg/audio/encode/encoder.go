// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for clip writers and the codec lookup
package encode

import (
	"fmt"
	"io"

	"github.com/harperreed/soundbites/pkg/audio"
)

// Encoder writes a float buffer in a container or raw format
type Encoder interface {
	// Encode writes buf to w
	Encode(w io.WriteSeeker, buf *audio.Buffer) error

	// Ext returns the file extension for this format, without the dot
	Ext() string
}

// New creates an encoder for codec. A bitDepth of 0 keeps each buffer's own depth.
func New(codec string, bitDepth int) (Encoder, error) {
	switch codec {
	case "wav":
		return NewWAV(bitDepth)
	case "pcm":
		return NewPCM(bitDepth)
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: wav, pcm)", codec)
	}
}

// outputDepth resolves the bit depth for one buffer
func outputDepth(fixed int, buf *audio.Buffer) (int, error) {
	depth := fixed
	if depth == 0 {
		depth = buf.Format.BitDepth
	}
	if depth == 0 {
		// lossy sources report nothing useful
		depth = 16
	}
	if err := checkDepth(depth); err != nil {
		return 0, err
	}
	return depth, nil
}

func checkDepth(bitDepth int) error {
	switch bitDepth {
	case 8, 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("unsupported bit depth: %d (supported: 8, 16, 24, 32)", bitDepth)
	}
}
