package logging_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"haeds/internal/config"
	"haeds/internal/logging"
	"haeds/internal/testsupport"
)

func TestConsoleLoggerFormatsComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "loader").Info("configuration loaded", "path", "/tmp/a b.ini", "sections", 4)

	line := buf.String()
	for _, want := range []string{" INFO loader: configuration loaded", `path="/tmp/a b.ini"`, "sections=4"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("message with caller")

	if !strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerGroups(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.WithGroup("video").With("codec", "H264").Info("check", "width", 1920)

	for _, want := range []string{"video.codec=H264", "video.width=1920"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in %q", want, buf.String())
		}
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("json message", "k", "v")

	out := buf.String()
	for _, want := range []string{`"ts":`, `"level":"info"`, `"msg":"json message"`, `"k":"v"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected unsupported format error")
	}
	if _, err := logging.New(logging.Options{Level: "loud"}); err == nil {
		t.Fatal("expected unsupported level error")
	}
}

func TestNewFromSnapshotDebugStatusForcesDebugLevel(t *testing.T) {
	snap := config.Load(testsupport.WriteConfig(t, t.TempDir(),
		testsupport.WithValue("Debug", "Status", "1"),
		testsupport.WithValue("Debug", "LogLevel", "error"),
	))

	var buf bytes.Buffer
	logger, closeLog, err := logging.NewFromSnapshot(snap, logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFromSnapshot returned error: %v", err)
	}
	defer closeLog()
	logger.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("expected debug output, got %q", buf.String())
	}
}

func TestNewFromSnapshotUsesLogLevel(t *testing.T) {
	snap := config.Load(testsupport.WriteConfig(t, t.TempDir(),
		testsupport.WithValue("Debug", "Status", "0"),
		testsupport.WithValue("Debug", "LogLevel", `"warn"`),
	))

	var buf bytes.Buffer
	logger, closeLog, err := logging.NewFromSnapshot(snap, logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFromSnapshot returned error: %v", err)
	}
	defer closeLog()
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("expected warn threshold, got %q", out)
	}
}

func TestNewFromSnapshotWritesDebugFile(t *testing.T) {
	dir := t.TempDir()
	snap := config.Load(testsupport.WriteConfig(t, dir,
		testsupport.WithValue("Debug", "Output", "1"),
		testsupport.WithValue("Debug", "FileName", `"logs/haeds.log"`),
	))

	var buf bytes.Buffer
	logger, closeLog, err := logging.NewFromSnapshot(snap, logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFromSnapshot returned error: %v", err)
	}
	logger.Info("to both")
	if err := closeLog(); err != nil {
		t.Fatalf("close log file: %v", err)
	}
	if err := closeLog(); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("expected log file to be closed, got %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "logs", "haeds.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "to both") || !strings.Contains(buf.String(), "to both") {
		t.Fatalf("expected message in file and writer, file=%q writer=%q", content, buf.String())
	}
}

func TestNewFromSnapshotIgnoresFailedLoad(t *testing.T) {
	snap := config.Load(filepath.Join(t.TempDir(), "missing.ini"))

	var buf bytes.Buffer
	logger, closeLog, err := logging.NewFromSnapshot(snap, logging.Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("NewFromSnapshot returned error: %v", err)
	}
	defer closeLog()
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected base options to apply, got %q", buf.String())
	}
}

func TestWithSessionID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.WithSessionID(logger, "session-abc").With("extra", "value").Info("test message")

	out := buf.String()
	if !strings.Contains(out, `"session_id":"session-abc"`) || !strings.Contains(out, `"extra":"value"`) {
		t.Fatalf("expected session_id and extra attr, got %s", out)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("nothing happens")
	if logging.WithSessionID(nil, "x") == nil {
		t.Fatal("expected a logger for nil base")
	}
}

func TestOpenClosesOutputFiles(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "haeds.log")
	logger, closeLog, err := logging.Open(logging.Options{Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Info("written")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := closeLog(); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("expected output file to be closed, got %v", err)
	}
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(content), "written") {
		t.Fatalf("expected message in file, got %q", content)
	}
}
