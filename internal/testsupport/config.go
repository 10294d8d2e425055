package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type entry struct {
	key   string
	value string
}

type section struct {
	name    string
	entries []entry
}

type configBuilder struct {
	sections []section
	trailer  string
}

// Default field values written by RenderConfig. Tests compare against these.
const (
	FrameWidth      = 1920
	FrameHeight     = 1080
	Codec           = "H264"
	FrameRate       = 29.97
	StreamCount     = 4
	MaxH265EncDelay = 2
	IFrameInterval  = 30
	BufferSize      = 6220800
	TextSize        = 1024
	BandWidth       = 100
	DebugStatus     = 1
	DebugOutput     = 0
	LogLevel        = "debug"
	FileName        = "haeds.log"
)

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		sections: []section{
			{name: "Video", entries: []entry{
				{"FrameWidth", "1920"},
				{"FrameHeight", "1080"},
				{"Codec", `"H264"`},
				{"FrameRate", "29.97"},
				{"StreamCount", "4"},
				{"MaxH265EncDelay", "2"},
				{"IFrameInterval", "30"},
			}},
			{name: "DecoderSharedMemory", entries: []entry{
				{"BufferSize", "6220800"},
				{"TextSize", "1024"},
			}},
			{name: "Network", entries: []entry{
				{"BandWidth", "100"},
			}},
			{name: "Debug", entries: []entry{
				{"Status", "1"},
				{"Output", "0"},
				{"LogLevel", `"debug"`},
				{"FileName", `"haeds.log"`},
			}},
		},
	}
}

// WithValue sets a raw value, adding the section or key when absent.
func WithValue(sectionName, key, value string) ConfigOption {
	return func(b *configBuilder) {
		for i := range b.sections {
			if b.sections[i].name != sectionName {
				continue
			}
			for j := range b.sections[i].entries {
				if b.sections[i].entries[j].key == key {
					b.sections[i].entries[j].value = value
					return
				}
			}
			b.sections[i].entries = append(b.sections[i].entries, entry{key, value})
			return
		}
		b.sections = append(b.sections, section{name: sectionName, entries: []entry{{key, value}}})
	}
}

// WithoutKey drops a single key.
func WithoutKey(sectionName, key string) ConfigOption {
	return func(b *configBuilder) {
		for i := range b.sections {
			if b.sections[i].name != sectionName {
				continue
			}
			kept := b.sections[i].entries[:0]
			for _, e := range b.sections[i].entries {
				if e.key != key {
					kept = append(kept, e)
				}
			}
			b.sections[i].entries = kept
		}
	}
}

// WithoutSection drops a whole section, header included.
func WithoutSection(sectionName string) ConfigOption {
	return func(b *configBuilder) {
		kept := b.sections[:0]
		for _, s := range b.sections {
			if s.name != sectionName {
				kept = append(kept, s)
			}
		}
		b.sections = kept
	}
}

// WithTrailer appends raw text after the generated sections.
func WithTrailer(text string) ConfigOption {
	return func(b *configBuilder) {
		b.trailer = text
	}
}

// RenderConfig returns the INI text for a complete configuration with the
// options applied.
func RenderConfig(opts ...ConfigOption) string {
	b := newConfigBuilder()
	for _, opt := range opts {
		opt(b)
	}

	var sb strings.Builder
	for _, s := range b.sections {
		sb.WriteString("[" + s.name + "]\n")
		for _, e := range s.entries {
			sb.WriteString(e.key + " = " + e.value + "\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(b.trailer)
	return sb.String()
}

// WriteConfig writes RenderConfig output to dir/config.ini and returns the path.
func WriteConfig(t testing.TB, dir string, opts ...ConfigOption) string {
	t.Helper()

	path := filepath.Join(dir, "config.ini")
	WriteFile(t, path, RenderConfig(opts...))
	return path
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
