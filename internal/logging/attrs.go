package logging

import (
	"context"
	"log/slog"
)

// Standardized attribute keys.
const (
	FieldComponent = "component"
	FieldSessionID = "session_id"
)

// Error returns the standard error attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger creates a logger with a standardized component attribute.
// If logger is nil, a no-op logger is used as the base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

// WithSessionID tags every record written through the returned logger with
// a session_id.
func WithSessionID(logger *slog.Logger, sessionID string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return slog.New(newSessionIDHandler(logger.Handler(), sessionID))
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }

type sessionIDHandler struct {
	base      slog.Handler
	sessionID string
}

func newSessionIDHandler(base slog.Handler, sessionID string) slog.Handler {
	if base == nil {
		return NoopHandler{}
	}
	return &sessionIDHandler{base: base, sessionID: sessionID}
}

func (h *sessionIDHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *sessionIDHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(slog.String(FieldSessionID, h.sessionID))
	return h.base.Handle(ctx, record)
}

func (h *sessionIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sessionIDHandler{base: h.base.WithAttrs(attrs), sessionID: h.sessionID}
}

func (h *sessionIDHandler) WithGroup(name string) slog.Handler {
	return &sessionIDHandler{base: h.base.WithGroup(name), sessionID: h.sessionID}
}
