// Package logging assembles the structured slog loggers used by haeds.
//
// It owns the console (key=value) and JSON handlers, maps level names onto
// slog levels, and derives logger settings from a loaded configuration's
// Debug section: debug mode forces debug level, and file output appends to
// Debug:FileName. A no-op logger is provided for tests and for wiring code
// that has no logger yet.
package logging
