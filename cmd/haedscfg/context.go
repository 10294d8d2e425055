package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"haeds/internal/config"
	"haeds/internal/logging"
)

type commandContext struct {
	configFlag *string
	logLevel   *string
	logFormat  *string

	sessionID string
	logOpts   logging.Options
	logger    *slog.Logger

	snapshotOnce sync.Once
	snapshot     *config.Snapshot
}

func newCommandContext(configFlag, logLevel, logFormat *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		logLevel:   logLevel,
		logFormat:  logFormat,
		sessionID:  uuid.NewString(),
		logger:     logging.NewNop(),
	}
}

func (c *commandContext) initLogger(w io.Writer) error {
	c.logOpts = logging.Options{
		Level:  deref(c.logLevel),
		Format: deref(c.logFormat),
		Writer: w,
	}
	logger, err := logging.New(c.logOpts)
	if err != nil {
		return err
	}
	c.logger = logging.WithSessionID(logger, c.sessionID)
	return nil
}

// loadSnapshot loads the configuration once per invocation.
func (c *commandContext) loadSnapshot() *config.Snapshot {
	c.snapshotOnce.Do(func() {
		loader := config.NewLoader(config.WithLogger(logging.NewComponentLogger(c.logger, "config")))
		c.snapshot = loader.Load(strings.TrimSpace(deref(c.configFlag)))
	})
	return c.snapshot
}

// configuredLogger returns a logger that honours the loaded Debug section and
// a function releasing its log file. It falls back to the flag-driven logger
// when the section cannot be applied.
func (c *commandContext) configuredLogger(snap *config.Snapshot) (*slog.Logger, func() error) {
	logger, closeLog, err := logging.NewFromSnapshot(snap, c.logOpts)
	if err != nil {
		c.logger.Warn("debug settings ignored", logging.Error(err))
		return c.logger, func() error { return nil }
	}
	return logging.WithSessionID(logger, c.sessionID), closeLog
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
