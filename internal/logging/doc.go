// Package logging builds the slog loggers used by the soundbites CLI.
//
// Two formats are supported: "console" (key=value text) and "json". Debug
// level adds source locations. Logs go to stderr by default so that command
// output on stdout can be piped.
package logging
