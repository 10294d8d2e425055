package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"haeds/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	OutputPaths []string
	// Writer, when set, receives output instead of OutputPaths.
	Writer      io.Writer
	Development bool
}

// New constructs a slog logger using the provided options. Files named in
// OutputPaths stay open for the life of the process; use Open when they must
// be released.
func New(opts Options) (*slog.Logger, error) {
	logger, _, err := Open(opts)
	return logger, err
}

// Open constructs a logger like New and also returns a function that closes
// any files it opened.
func Open(opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}
	if format != "console" && format != "json" {
		return nil, nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	writer := opts.Writer
	var files []*os.File
	if writer == nil {
		writer, files, err = openWriters(defaultSlice(opts.OutputPaths, []string{"stderr"}))
		if err != nil {
			return nil, nil, err
		}
	}

	addSource := opts.Development || level <= slog.LevelDebug

	var handler slog.Handler
	if format == "json" {
		handler = newJSONHandler(writer, levelVar, addSource)
	} else {
		handler = newConsoleHandler(writer, levelVar, addSource)
	}
	return slog.New(handler), closeFiles(files), nil
}

// NewFromSnapshot builds a logger from the Debug section of a loaded
// configuration, starting from base. Debug mode forces debug level; otherwise
// Debug:LogLevel is used when set. File output appends to Debug:FileName,
// resolved against the configuration file's directory. A snapshot that did
// not load cleanly leaves base untouched. The returned function closes the
// log file and must be called once the logger is no longer used.
func NewFromSnapshot(snap *config.Snapshot, base Options) (*slog.Logger, func() error, error) {
	if snap == nil || !snap.OK() {
		return Open(base)
	}

	opts := base
	debug := snap.Debug()
	switch {
	case debug.Enabled():
		opts.Level = "debug"
	case strings.TrimSpace(debug.LogLevel) != "":
		opts.Level = debug.LogLevel
	}

	if !debug.FileOutput() || strings.TrimSpace(debug.FileName) == "" {
		return Open(opts)
	}

	logPath := debug.FileName
	if !filepath.IsAbs(logPath) {
		logPath = filepath.Join(filepath.Dir(snap.Path()), logPath)
	}
	if opts.Writer == nil {
		opts.OutputPaths = append(defaultSlice(opts.OutputPaths, []string{"stderr"}), logPath)
		return Open(opts)
	}

	file, err := openLogFile(logPath)
	if err != nil {
		return nil, nil, err
	}
	opts.Writer = io.MultiWriter(opts.Writer, file)
	logger, closeOther, err := Open(opts)
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return logger, func() error {
		return errors.Join(closeOther(), file.Close())
	}, nil
}

// ParseLevel maps a level name onto a slog level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error", "fatal":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log level: unsupported value %q", level)
	}
}

func defaultSlice(value []string, fallback []string) []string {
	if len(value) == 0 {
		cp := make([]string, len(fallback))
		copy(cp, fallback)
		return cp
	}
	cp := make([]string, len(value))
	copy(cp, value)
	return cp
}

func openWriters(paths []string) (io.Writer, []*os.File, error) {
	seen := map[string]struct{}{}
	var writers []io.Writer
	var files []*os.File

	for _, path := range paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}

		switch trimmed {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			file, err := openLogFile(trimmed)
			if err != nil {
				_ = closeFiles(files)()
				return nil, nil, err
			}
			writers = append(writers, file)
			files = append(files, file)
		}
	}

	switch len(writers) {
	case 0:
		return os.Stderr, nil, nil
	case 1:
		return writers[0], files, nil
	default:
		return io.MultiWriter(writers...), files, nil
	}
}

func closeFiles(files []*os.File) func() error {
	return func() error {
		var errs []error
		for _, file := range files {
			if err := file.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}
