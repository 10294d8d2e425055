package config_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"haeds/internal/config"
	"haeds/internal/testsupport"
)

func TestDumpListsFieldsInOrder(t *testing.T) {
	snap := config.Load(testsupport.WriteConfig(t, t.TempDir()))

	var buf bytes.Buffer
	if err := snap.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	want := strings.Join([]string{
		"Video:FrameWidth (pix): 1920",
		"Video:FrameHeight (pix): 1080",
		"Video:Codec: H264",
		"Video:FrameRate (fps): 29.97",
		"Video:StreamCount: 4",
		"Video:MaxH265EncDelay: 2",
		"Video:IFrameInterval: 30",
		"DecoderSharedMemory:BufferSize: 6220800",
		"DecoderSharedMemory:TextSize: 1024",
		"Network:BandWidth (Mbps): 100",
		"Debug:Status: 1",
		"Debug:Output: 0",
		"Debug:LogLevel: debug",
		"Debug:FileName: haeds.log",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected dump:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestDumpOnFailedLoadShowsZeroValues(t *testing.T) {
	snap := config.Load(filepath.Join(t.TempDir(), "missing.ini"))

	var buf bytes.Buffer
	if err := snap.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Video:FrameWidth (pix): 0\n", "Video:Codec: \n", "Video:FrameRate (fps): 0\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in dump, got:\n%s", want, out)
		}
	}
}
