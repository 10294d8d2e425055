package config

import (
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Loader turns configuration files into snapshots. A Loader holds no state
// between calls and may be shared.
type Loader struct {
	defaultPath string
	open        SourceOpener
	logger      *slog.Logger
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithDefaultPath sets the path used when Load is called with an empty path.
func WithDefaultPath(path string) Option {
	return func(l *Loader) {
		l.defaultPath = path
	}
}

// WithSourceOpener replaces the parser used to read configuration files.
func WithSourceOpener(open SourceOpener) Option {
	return func(l *Loader) {
		if open != nil {
			l.open = open
		}
	}
}

// WithLogger sets the logger that records load outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a loader reading DefaultPath with OpenSource unless
// options say otherwise.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		defaultPath: DefaultPath,
		open:        OpenSource,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads path with a default Loader.
func Load(path string) *Snapshot {
	return NewLoader().Load(path)
}

// LoadDefault reads DefaultPath with a default Loader.
func LoadDefault() *Snapshot {
	return NewLoader().Load("")
}

// Load reads and validates the configuration at path, or at the loader's
// default path when path is empty. It never returns nil; check Code (or Err)
// before using the settings.
func (l *Loader) Load(path string) *Snapshot {
	if strings.TrimSpace(path) == "" {
		path = l.defaultPath
	}
	logger := l.logger.With(
		slog.String("load_id", uuid.NewString()),
		slog.String("config_path", path),
	)

	snap := l.load(path)
	if snap.code == ResultOK {
		logger.Debug("configuration loaded",
			slog.String("resolved_path", snap.path),
			slog.Any("sections", snap.sections),
		)
	} else {
		logger.Warn("configuration rejected",
			slog.String("result", snap.code.String()),
			slog.String("reason", snap.message),
			slog.Any("error", snap.err),
		)
	}
	return snap
}

func (l *Loader) load(path string) *Snapshot {
	snap := &Snapshot{path: path}

	resolved, err := expandPath(path)
	if err != nil {
		return snap.reject(&LoadError{Code: ResultFileNotFound, Message: messageFileNotFound, Err: err})
	}
	snap.path = resolved

	if _, err := os.Stat(resolved); err != nil {
		return snap.reject(&LoadError{Code: ResultFileNotFound, Message: messageFileNotFound, Err: err})
	}

	src, err := l.open(resolved)
	if err != nil {
		return snap.reject(&LoadError{Code: ResultContentInvalid, Message: messageParseFailed, Err: err})
	}

	// Sections are recorded before any field is checked.
	snap.sections = sortedSections(src.Sections())

	settings, loadErr := extractSettings(src)
	if loadErr != nil {
		return snap.reject(loadErr)
	}

	snap.settings = settings
	snap.code = ResultOK
	snap.message = messageOK
	return snap
}

func (s *Snapshot) reject(err *LoadError) *Snapshot {
	err.Path = s.path
	s.code = err.Code
	s.message = err.Message
	s.err = err
	return s
}

func sortedSections(names []string) []string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
