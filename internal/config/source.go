package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Lookup errors returned by Source implementations.
var (
	// ErrKeyNotFound means the section or the key is absent.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidValue means the key exists but cannot be read as the requested type.
	ErrInvalidValue = errors.New("invalid value")
	// ErrSentinelValue means the file holds a reserved "not found" marker.
	ErrSentinelValue = errors.New("reserved sentinel value")
)

// Source is a parsed key/value document. Section and key matching is case
// insensitive. Lookups never substitute defaults: an absent key is reported
// with ErrKeyNotFound and a malformed one with ErrInvalidValue.
type Source interface {
	Sections() []string
	Int(section, key string) (int, error)
	Float(section, key string) (float64, error)
	String(section, key string) (string, error)
}

// SourceOpener parses the file at path into a Source.
type SourceOpener func(path string) (Source, error)

// OpenSource picks a parser by file extension: .toml files are read as TOML,
// everything else as INI.
func OpenSource(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return OpenTOML(path)
	default:
		return OpenINI(path)
	}
}
