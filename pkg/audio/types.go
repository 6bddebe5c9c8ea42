// ABOUTME: Audio type definitions
// ABOUTME: Defines audio formats, float sample buffers and PCM conversions
package audio

import "fmt"

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// Format describes audio stream format
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// String renders the format for logs
func (f Format) String() string {
	return fmt.Sprintf("%s %dHz %dch %d-bit", f.Codec, f.SampleRate, f.Channels, f.BitDepth)
}

// Buffer holds decoded audio as interleaved float samples.
//
// Frame i, channel c lives at Samples[i*Format.Channels+c]. Integer PCM is
// normalised to [-1, 1) by the decoders.
type Buffer struct {
	Samples []float32
	Format  Format
}

// Frames returns the number of complete frames in the buffer
func (b *Buffer) Frames() int {
	if b == nil || b.Format.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Format.Channels
}

// Duration returns the buffer length in seconds, or 0 if the sample rate is unknown
func (b *Buffer) Duration() float64 {
	if b == nil || b.Format.SampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.Format.SampleRate)
}

// FullScale returns the positive full-scale value for a signed integer bit depth
func FullScale(bitDepth int) float64 {
	if bitDepth <= 0 || bitDepth > 32 {
		return 1
	}
	return float64(int64(1) << uint(bitDepth-1))
}

// SampleFromInt converts a signed integer sample of the given bit depth to float
func SampleFromInt(sample int32, bitDepth int) float32 {
	return float32(float64(sample) / FullScale(bitDepth))
}

// SampleToInt converts a float sample to a signed integer of the given bit depth.
// Values outside [-1, 1) are clamped.
func SampleToInt(sample float32, bitDepth int) int32 {
	scale := FullScale(bitDepth)
	v := float64(sample) * scale
	if v >= scale-1 {
		return int32(scale - 1)
	}
	if v <= -scale {
		return int32(-scale)
	}
	if v < 0 {
		return int32(v - 0.5)
	}
	return int32(v + 0.5)
}

// SampleFromInt16 converts an int16 sample to float
func SampleFromInt16(sample int16) float32 {
	return SampleFromInt(int32(sample), 16)
}

// SampleToInt16 converts a float sample to int16
func SampleToInt16(sample float32) int16 {
	return int16(SampleToInt(sample, 16))
}

// SampleTo24Bit converts int32 to 24-bit packed bytes (little-endian)
func SampleTo24Bit(sample int32) [3]byte {
	// Take lower 24 bits, pack little-endian
	return [3]byte{
		byte(sample),
		byte(sample >> 8),
		byte(sample >> 16),
	}
}

// SampleFrom24Bit converts 24-bit packed bytes to int32 (little-endian)
func SampleFrom24Bit(b [3]byte) int32 {
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	// Sign extend from 24-bit to 32-bit
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF
	}
	return val
}
