package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// FileName is the active log file inside the log directory
	FileName = "drift-scene.log"

	// MaxSize triggers rotation at startup
	MaxSize = 10 * 1024 * 1024
)

// Options selects where and how much to log
type Options struct {
	Debug bool
	Dir   string
	Level string
}

// discard stands in for the log file when logging is off
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
func (discard) Close() error                { return nil }

// Setup returns a file-backed logger tagged with a fresh session id, and the file itself
// so other exporters can share it
// With Debug off it returns zerolog.Nop() and a discarding writer, and touches nothing on disk
// The terminal owns stdout and stderr, so logs never go there
func Setup(opts Options) (zerolog.Logger, io.WriteCloser, error) {
	if !opts.Debug {
		return zerolog.Nop(), discard{}, nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), discard{}, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), discard{}, fmt.Errorf("creating log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path); err != nil {
		return zerolog.Nop(), discard{}, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), discard{}, fmt.Errorf("opening log file: %w", err)
	}

	logger := New(f, level)
	return logger, f, nil
}

// New builds a session-tagged logger on w
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
}

// ParseLevel maps a config level name; empty means info
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// rotate moves an oversized log aside to <name>.1, replacing any previous one
func rotate(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= MaxSize {
		return nil
	}
	if err := os.Rename(path, path+".1"); err != nil {
		return fmt.Errorf("rotating log file: %w", err)
	}
	return nil
}
