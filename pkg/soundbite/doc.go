// ABOUTME: Sound event segmentation package
// ABOUTME: Baselines, onset detection, silence-bounded ranges and clip extraction
// Package soundbite splits a multi-channel sample buffer into discrete sound
// events.
//
// A pass has three steps:
//   - EstimateBaselines: per-channel mean and maximum absolute deviation
//   - Segmenter: scans for an onset, then walks backward and forward until a
//     run of consecutive silent frames bounds the event
//   - Split: copies each range into a Clip and hands it to a Sink in order
//
// A frame is an onset if any channel crosses FracSound of its magnitude; it is
// silent only if every channel stays within FracSilence of its magnitude.
//
// Example:
//
//	n, err := soundbite.Split(ctx, buf, soundbite.DefaultConfig(),
//	    soundbite.SinkFunc(func(c soundbite.Clip) error {
//	        return save(c.Index, c.Buffer())
//	    }))
package soundbite
