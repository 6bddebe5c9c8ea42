package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/harperreed/soundbites/pkg/soundbite"
)

// Segmentation contains the detection tunables.
type Segmentation struct {
	// FracSound is the fraction of a channel's peak deviation that starts a sound.
	FracSound float64 `toml:"frac_sound"`
	// FracSilence is the fraction of a channel's peak deviation treated as silence.
	FracSilence float64 `toml:"frac_silence"`
	// SilenceRunLength is the number of consecutive silent frames that bounds a sound.
	SilenceRunLength int `toml:"silence_run_length"`
	// OnsetMode is "raw" (|sample| - mean) or "centered" (|sample - mean|).
	OnsetMode        string `toml:"onset_mode"`
	ParallelBaseline bool   `toml:"parallel_baseline"`
}

// Output contains configuration for clip files.
type Output struct {
	Dir    string `toml:"dir"`
	Prefix string `toml:"prefix"`
	Digits int    `toml:"digits"`
	Format string `toml:"format"`
	// BitDepth forces the written bit depth; 0 keeps the source depth.
	BitDepth int `toml:"bit_depth"`
	// SampleRate resamples clips before writing; 0 keeps the source rate.
	SampleRate int `toml:"sample_rate"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for soundbites.
type Config struct {
	Segmentation Segmentation `toml:"segmentation"`
	Output       Output       `toml:"output"`
	Logging      Logging      `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/soundbites/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// yields the defaults. It returns the config, the resolved path and whether
// that file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// Soundbite converts the segmentation section into core tunables.
func (c *Config) Soundbite() soundbite.Config {
	return soundbite.Config{
		FracSound:        c.Segmentation.FracSound,
		FracSilence:      c.Segmentation.FracSilence,
		SilenceRunLength: c.Segmentation.SilenceRunLength,
		OnsetMode:        soundbite.OnsetMode(c.Segmentation.OnsetMode),
		ParallelBaseline: c.Segmentation.ParallelBaseline,
	}
}

// Marshal renders the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// CreateSample writes the default configuration to path.
func CreateSample(path string) error {
	cfg := Default()
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	header := []byte("# soundbites configuration\n# Values here are overridden by command-line flags.\n\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	projectPath, err := filepath.Abs("soundbites.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	c.Segmentation.OnsetMode = strings.ToLower(strings.TrimSpace(c.Segmentation.OnsetMode))
	if c.Segmentation.OnsetMode == "" {
		c.Segmentation.OnsetMode = string(soundbite.OnsetRaw)
	}

	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = defaultOutputDir
	}
	var err error
	if c.Output.Dir, err = ExpandPath(c.Output.Dir); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// ExpandPath resolves a leading ~ and cleans the path.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
