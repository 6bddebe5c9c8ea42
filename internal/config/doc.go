// Package config loads, normalizes, and validates soundbites configuration.
//
// Configuration is TOML. Load looks for an explicit path, then
// ./soundbites.toml, then ~/.config/soundbites/config.toml, and falls back to
// Default when none exists. Values are normalized (paths expanded, enums
// lower-cased) before Validate checks them, and command-line flags are applied
// on top by the CLI.
package config
