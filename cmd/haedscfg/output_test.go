package main

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"haeds/internal/config"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Result", statusError, "Video:Codec FAILED!", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Result:", "[ERROR] Video:Codec FAILED!")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Result", statusOK, "OK", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestRenderStatusLineWithoutMessage(t *testing.T) {
	got := renderStatusLine("Path", statusInfo, "", false)
	if !strings.HasSuffix(got, "[INFO]") {
		t.Fatalf("expected bare status, got %q", got)
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader(" Configuration ", false)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "== Configuration ==" {
		t.Fatalf("unexpected title %q", lines[0])
	}
	if lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("rule should match title width, got %q", lines[1])
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestRenderFieldTableGroupsSections(t *testing.T) {
	out := renderFieldTable([]config.Field{
		{Section: "Video", Key: "FrameWidth", Unit: "pix", Value: "1920"},
		{Section: "Video", Key: "FrameHeight", Unit: "pix", Value: "1080"},
		{Section: "Network", Key: "BandWidth", Unit: "Mbps", Value: "100"},
	})
	if strings.Count(out, "Video") != 1 {
		t.Fatalf("expected section name once per group, got:\n%s", out)
	}
	for _, want := range []string{"FrameHeight", "1080", "Network", "Mbps"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}
