package config

import (
	"fmt"
	"io"
	"strconv"
)

// Field is one configuration value rendered for display.
type Field struct {
	Section string
	Key     string
	Unit    string
	Value   string
}

// Label returns the field in Section:Key form, with the unit appended when
// the field has one.
func (f Field) Label() string {
	if f.Unit == "" {
		return f.Section + ":" + f.Key
	}
	return f.Section + ":" + f.Key + " (" + f.Unit + ")"
}

// Fields lists every setting in file order. Values are whatever the snapshot
// holds, so a failed load lists zero values.
func (s *Snapshot) Fields() []Field {
	v := s.settings.Video
	m := s.settings.DecoderSharedMemory
	n := s.settings.Network
	d := s.settings.Debug
	return []Field{
		{sectionVideo, "FrameWidth", "pix", strconv.Itoa(v.FrameWidth)},
		{sectionVideo, "FrameHeight", "pix", strconv.Itoa(v.FrameHeight)},
		{sectionVideo, "Codec", "", v.Codec},
		{sectionVideo, "FrameRate", "fps", strconv.FormatFloat(v.FrameRate, 'f', -1, 64)},
		{sectionVideo, "StreamCount", "", strconv.Itoa(v.StreamCount)},
		{sectionVideo, "MaxH265EncDelay", "", strconv.Itoa(v.MaxH265EncDelay)},
		{sectionVideo, "IFrameInterval", "", strconv.Itoa(v.IFrameInterval)},
		{sectionDecoderSharedMemory, "BufferSize", "", strconv.Itoa(m.BufferSize)},
		{sectionDecoderSharedMemory, "TextSize", "", strconv.Itoa(m.TextSize)},
		{sectionNetwork, "BandWidth", "Mbps", strconv.Itoa(n.BandWidth)},
		{sectionDebug, "Status", "", strconv.Itoa(d.Status)},
		{sectionDebug, "Output", "", strconv.Itoa(d.Output)},
		{sectionDebug, "LogLevel", "", d.LogLevel},
		{sectionDebug, "FileName", "", d.FileName},
	}
}

// Dump writes one "Label: value" line per field. It does not look at the
// result code.
func (s *Snapshot) Dump(w io.Writer) error {
	for _, field := range s.Fields() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", field.Label(), field.Value); err != nil {
			return fmt.Errorf("dump %s: %w", field.Label(), err)
		}
	}
	return nil
}
