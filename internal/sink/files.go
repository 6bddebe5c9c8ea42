// ABOUTME: File-backed clip sink
// ABOUTME: Writes each clip to <dir>/<prefix><index>.<ext> under a directory lock
package sink

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/harperreed/soundbites/pkg/audio/encode"
	"github.com/harperreed/soundbites/pkg/audio/resample"
	"github.com/harperreed/soundbites/pkg/soundbite"
)

const lockFileName = ".soundbites.lock"

// ErrDirLocked reports that another run is writing to the same directory
var ErrDirLocked = errors.New("output directory is locked by another soundbites run")

// Options configures a Files sink
type Options struct {
	Dir     string
	Prefix  string
	Digits  int
	Encoder encode.Encoder
	// SampleRate resamples clips before encoding; 0 keeps the source rate
	SampleRate int
	Logger     *slog.Logger
}

// Files writes clips as individual files
type Files struct {
	dir     string
	prefix  string
	digits  int
	encoder encode.Encoder
	rate    int
	logger  *slog.Logger
	lock    *flock.Flock
	written []string
}

// NewFiles creates a file sink. Call Open before writing clips.
func NewFiles(opts Options) (*Files, error) {
	if opts.Encoder == nil {
		return nil, errors.New("sink requires an encoder")
	}
	if opts.Digits <= 0 {
		opts.Digits = 5
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Files{
		dir:     opts.Dir,
		prefix:  opts.Prefix,
		digits:  opts.Digits,
		encoder: opts.Encoder,
		rate:    opts.SampleRate,
		logger:  opts.Logger,
		lock:    flock.New(filepath.Join(opts.Dir, lockFileName)),
	}, nil
}

// Open creates the output directory and takes the directory lock
func (f *Files) Open() error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("ensure output directory: %w", err)
	}

	ok, err := f.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrDirLocked, f.dir)
	}
	return nil
}

// Close releases the directory lock and removes the lock file
func (f *Files) Close() error {
	if !f.lock.Locked() {
		return nil
	}
	if err := f.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	if err := os.Remove(f.lock.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		f.logger.Warn("failed to remove lock file", "path", f.lock.Path(), "error", err)
	}
	return nil
}

// Path returns the file path used for a clip index
func (f *Files) Path(index uint32) string {
	name := fmt.Sprintf("%s%0*d.%s", f.prefix, f.digits, index, f.encoder.Ext())
	return filepath.Join(f.dir, name)
}

// Written returns the paths written so far, in emission order
func (f *Files) Written() []string {
	out := make([]string, len(f.written))
	copy(out, f.written)
	return out
}

// WriteClip encodes one clip to its own file
func (f *Files) WriteClip(clip soundbite.Clip) error {
	if !f.lock.Locked() {
		return errors.New("sink is not open")
	}

	buf := clip.Buffer()
	if f.rate > 0 {
		var err error
		if buf, err = resample.Buffer(buf, f.rate); err != nil {
			return fmt.Errorf("resample clip %d: %w", clip.Index, err)
		}
	}

	path := f.Path(clip.Index)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create clip file: %w", err)
	}

	if err := f.encoder.Encode(file, buf); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}

	f.written = append(f.written, path)
	f.logger.Debug("clip written",
		"index", clip.Index,
		"path", path,
		"frames", clip.Frames(),
	)
	return nil
}
