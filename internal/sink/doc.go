// ABOUTME: Output collaborators for extracted clips
// ABOUTME: Persists clips to disk with sequential zero-padded names
// Package sink implements soundbite.Sink for the command line.
//
// Files names each clip <prefix><index>.<ext>, the index zero-padded to the
// configured width (five digits by default). A run holds an flock on
// <dir>/.soundbites.lock so two runs cannot interleave files in the same
// directory.
package sink
