// ABOUTME: Application layer for the soundbites command
// ABOUTME: Wires decoders, the segmenter, clip sinks and playback together
// Package app holds the orchestration shared by the split, scan, play and
// browse commands. Every Splitter carries a run ID that is attached to all of
// its log lines.
package app
