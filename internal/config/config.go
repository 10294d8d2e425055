package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

//go:embed sample_config.ini
var sampleConfig string

// ResultCode reports the outcome of a load.
type ResultCode int

const (
	// ResultOK means every required field was read.
	ResultOK ResultCode = iota
	// ResultFileNotFound means the configuration path does not exist.
	ResultFileNotFound
	// ResultContentInvalid covers parse failures and any missing or invalid field.
	ResultContentInvalid
)

func (c ResultCode) String() string {
	switch c {
	case ResultOK:
		return "OK"
	case ResultFileNotFound:
		return "FileNotFound"
	case ResultContentInvalid:
		return "ContentInvalid"
	default:
		return fmt.Sprintf("ResultCode(%d)", int(c))
	}
}

// Video contains the encoder and stream layout settings.
type Video struct {
	FrameWidth      int     `json:"frame_width" toml:"FrameWidth"`
	FrameHeight     int     `json:"frame_height" toml:"FrameHeight"`
	Codec           string  `json:"codec" toml:"Codec"`
	FrameRate       float64 `json:"frame_rate" toml:"FrameRate"`
	StreamCount     int     `json:"stream_count" toml:"StreamCount"`
	MaxH265EncDelay int     `json:"max_h265_enc_delay" toml:"MaxH265EncDelay"`
	IFrameInterval  int     `json:"iframe_interval" toml:"IFrameInterval"`
}

// DecoderSharedMemory sizes the shared memory region handed to decoders.
type DecoderSharedMemory struct {
	BufferSize int `json:"buffer_size" toml:"BufferSize"`
	TextSize   int `json:"text_size" toml:"TextSize"`
}

// Network contains link settings.
type Network struct {
	BandWidth int `json:"bandwidth" toml:"BandWidth"` // Mbps
}

// Debug contains diagnostic output settings. Status and Output are flags:
// zero is off, anything else is on.
type Debug struct {
	Status   int    `json:"status" toml:"Status"`
	Output   int    `json:"output" toml:"Output"`
	LogLevel string `json:"log_level" toml:"LogLevel"`
	FileName string `json:"file_name" toml:"FileName"`
}

// Enabled reports whether debug mode is switched on.
func (d Debug) Enabled() bool { return d.Status != 0 }

// FileOutput reports whether debug output should also go to FileName.
func (d Debug) FileOutput() bool { return d.Output != 0 }

// Settings groups every validated section.
//
// Sections:
//   - Video: frame geometry, codec, frame rate, stream layout, encoder pacing
//   - DecoderSharedMemory: decoder buffer sizes in bytes
//   - Network: available bandwidth in Mbps
//   - Debug: debug flags, log level, and log file
type Settings struct {
	Video               Video               `json:"video" toml:"Video"`
	DecoderSharedMemory DecoderSharedMemory `json:"decoder_shared_memory" toml:"DecoderSharedMemory"`
	Network             Network             `json:"network" toml:"Network"`
	Debug               Debug               `json:"debug" toml:"Debug"`
}

// Snapshot is the result of one load. When Code is not ResultOK the settings
// are zero valued; only the path, sections, and result fields carry data.
type Snapshot struct {
	path     string
	sections []string
	code     ResultCode
	message  string
	err      error
	settings Settings
}

// Path returns the resolved path the snapshot was loaded from.
func (s *Snapshot) Path() string { return s.path }

// Sections returns the section names found in the file, sorted.
func (s *Snapshot) Sections() []string { return slices.Clone(s.sections) }

// HasSection reports whether the file declared the named section.
func (s *Snapshot) HasSection(name string) bool {
	_, found := slices.BinarySearch(s.sections, name)
	return found
}

// Code returns the result code.
func (s *Snapshot) Code() ResultCode { return s.code }

// Message returns the human readable result message.
func (s *Snapshot) Message() string { return s.message }

// OK reports whether the load succeeded.
func (s *Snapshot) OK() bool { return s.code == ResultOK }

// Err returns a *LoadError describing the failure, or nil on success.
func (s *Snapshot) Err() error {
	if s.code == ResultOK {
		return nil
	}
	return s.err
}

// Settings returns a copy of all sections.
func (s *Snapshot) Settings() Settings { return s.settings }

// Video returns a copy of the Video section.
func (s *Snapshot) Video() Video { return s.settings.Video }

// DecoderSharedMemory returns a copy of the DecoderSharedMemory section.
func (s *Snapshot) DecoderSharedMemory() DecoderSharedMemory {
	return s.settings.DecoderSharedMemory
}

// Network returns a copy of the Network section.
func (s *Snapshot) Network() Network { return s.settings.Network }

// Debug returns a copy of the Debug section.
func (s *Snapshot) Debug() Debug { return s.settings.Debug }

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
