package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/soundbites/internal/config"
	"github.com/harperreed/soundbites/pkg/soundbite"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "soundbites.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be reported absent")
	}
	if resolved != path {
		t.Fatalf("resolved = %q, want %q", resolved, path)
	}

	got := cfg.Soundbite()
	want := soundbite.DefaultConfig()
	if got != want {
		t.Fatalf("segmentation = %+v, want %+v", got, want)
	}
	if cfg.Output.Format != "wav" || cfg.Output.Digits != 5 {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := writeConfig(t, `
[segmentation]
frac_sound = 0.5
frac_silence = 0.02
silence_run_length = 8
onset_mode = " Centered "
parallel_baseline = true

[output]
dir = "~/bites"
prefix = "take"
digits = 3
format = "PCM"
bit_depth = 24

[logging]
level = "DEBUG"
format = "json"
`)

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}

	seg := cfg.Soundbite()
	if seg.FracSound != 0.5 || seg.FracSilence != 0.02 || seg.SilenceRunLength != 8 {
		t.Fatalf("unexpected tunables: %+v", seg)
	}
	if seg.OnsetMode != soundbite.OnsetCentered {
		t.Fatalf("onset mode = %q, want centered", seg.OnsetMode)
	}
	if !seg.ParallelBaseline {
		t.Fatal("expected parallel baseline enabled")
	}
	if cfg.Output.Dir != filepath.Join(tempHome, "bites") {
		t.Fatalf("output dir not expanded: %q", cfg.Output.Dir)
	}
	if cfg.Output.Format != "pcm" || cfg.Output.BitDepth != 24 || cfg.Output.Prefix != "take" {
		t.Fatalf("unexpected output: %+v", cfg.Output)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level not normalized: %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{"negative frac sound", "[segmentation]\nfrac_sound = -1\n", "frac_sound"},
		{"zero run length", "[segmentation]\nsilence_run_length = 0\n", "silence_run_length"},
		{"unknown onset", "[segmentation]\nonset_mode = \"peak\"\n", "onset mode"},
		{"bad format", "[output]\nformat = \"flac\"\n", "output.format"},
		{"bad bit depth", "[output]\nbit_depth = 12\n", "output.bit_depth"},
		{"bad digits", "[output]\ndigits = 0\n", "output.digits"},
		{"bad log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"unknown key", "[segmentation]\nfrac_noise = 0.1\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := config.Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Fatalf("error %q does not mention %q", err, tt.contains)
			}
		})
	}
}

func TestSegmentationErrorsWrapSentinel(t *testing.T) {
	_, _, _, err := config.Load(writeConfig(t, "[segmentation]\nfrac_silence = -0.5\n"))
	if !errors.Is(err, soundbite.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestCreateSampleLoadsAsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected sample at %s to be found, got %s (exists=%v)", path, resolved, exists)
	}

	want := config.Default()
	if cfg.Segmentation != want.Segmentation || cfg.Logging != want.Logging {
		t.Fatalf("sample decoded to %+v, want %+v", cfg, want)
	}
	if cfg.Output.Format != "wav" || cfg.Output.Digits != 5 {
		t.Fatalf("unexpected output section %+v", cfg.Output)
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := config.ExpandPath("~/clips/../bites")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "bites"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}
