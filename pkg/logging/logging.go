// Package logging configures structured logging with tint.
//
// Usage:
//
//	runID := logging.SetupWithLevel(slog.LevelDebug) // colored, to stderr
//	closeFn, err := logging.SetupFile(path, l)       // log to a file while a TUI owns the terminal
//
// Every record carries a run_id unique to the process.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// SetupWithLevel configures colored logging to stderr at the given level and
// returns the run ID.
func SetupWithLevel(level slog.Level) string {
	return setup(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// SetupWithWriter configures uncolored logging to w and tags every record
// with a run_id, so runs sharing a log file can be told apart. It returns
// the run ID.
func SetupWithWriter(w io.Writer, level slog.Level) string {
	return setup(New(w, level).Handler())
}

// SetupFile appends logs to the file at path, creating parent directories.
// The returned function closes the file.
func SetupFile(path string, level slog.Level) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	SetupWithWriter(f, level)
	return f.Close, nil
}

// New returns a tint logger writing to w without color.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    true,
	}))
}

func setup(h slog.Handler) string {
	runID := uuid.NewString()
	slog.SetDefault(slog.New(h).With("run_id", runID))
	return runID
}
