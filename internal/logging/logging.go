// Package logging builds the charmbracelet/log loggers used by the CLI,
// the TUI and the SSH server.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a logger.
type Options struct {
	Prefix string
	Level  string // debug, info, warn or error; empty means info

	// File, when set, sends output to a size-rotated file instead of Writer.
	// A leading ~ expands to the home directory.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Writer is the destination when File is empty; nil means stderr.
	Writer io.Writer
}

// Logger wraps a log.Logger together with the file sink it may own.
type Logger struct {
	*log.Logger
	closer io.Closer
}

// New builds a logger. It fails only on an unknown level or an unusable
// log file path.
func New(opts Options) (*Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	var (
		w      = opts.Writer
		closer io.Closer
	)
	if opts.File != "" {
		path, err := expandHome(opts.File)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    orDefault(opts.MaxSizeMB, 10),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 7),
		}
		w, closer = lj, lj
	}
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return &Logger{Logger: logger, closer: closer}, nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// DefaultFile returns the log file used while the TUI owns the terminal.
func DefaultFile() string {
	return filepath.Join("~", ".forestrun", "forestrun.log")
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
