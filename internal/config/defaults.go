package config

import "github.com/harperreed/soundbites/pkg/soundbite"

const (
	defaultOutputDir    = "."
	defaultOutputFormat = "wav"
	defaultOutputDigits = 5
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Segmentation: Segmentation{
			FracSound:        soundbite.DefaultFracSound,
			FracSilence:      soundbite.DefaultFracSilence,
			SilenceRunLength: soundbite.DefaultSilenceRunLength,
			OnsetMode:        string(soundbite.OnsetRaw),
		},
		Output: Output{
			Dir:    defaultOutputDir,
			Format: defaultOutputFormat,
			Digits: defaultOutputDigits,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
