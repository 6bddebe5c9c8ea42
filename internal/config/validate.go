package config

import (
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.Soundbite().Validate(); err != nil {
		return fmt.Errorf("segmentation: %w", err)
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "wav", "pcm":
	default:
		return fmt.Errorf("output.format must be \"wav\" or \"pcm\", got %q", c.Output.Format)
	}
	switch c.Output.BitDepth {
	case 0, 8, 16, 24, 32:
	default:
		return fmt.Errorf("output.bit_depth must be 0, 8, 16, 24 or 32, got %d", c.Output.BitDepth)
	}
	if c.Output.SampleRate < 0 {
		return fmt.Errorf("output.sample_rate must not be negative, got %d", c.Output.SampleRate)
	}
	if err := ValidateDigits(c.Output.Digits); err != nil {
		return fmt.Errorf("output.digits %w", err)
	}
	return nil
}

// ValidateDigits checks the width of the zero-padded clip index.
func ValidateDigits(digits int) error {
	if digits < 1 || digits > 10 {
		return fmt.Errorf("must be between 1 and 10, got %d", digits)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
