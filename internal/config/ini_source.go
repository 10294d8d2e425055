package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

type iniSource struct {
	file *ini.File
}

// OpenINI parses an INI file. An inline comment starts only at a ';' or '#'
// preceded by whitespace, so values such as "a;b.log" survive intact.
func OpenINI(path string) (Source, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:          true,
		SpaceBeforeInlineComment: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("parse ini %s: %w", path, err)
	}
	return &iniSource{file: file}, nil
}

func (s *iniSource) Sections() []string {
	var names []string
	for _, section := range s.file.Sections() {
		// The implicit top-level section only counts when keys were written to
		// it, and is reported with an empty name.
		if section.Name() == ini.DefaultSection {
			if len(section.Keys()) > 0 {
				names = append(names, "")
			}
			continue
		}
		names = append(names, section.Name())
	}
	return names
}

func (s *iniSource) key(section, name string) (*ini.Key, error) {
	var found *ini.Section
	for _, candidate := range s.file.Sections() {
		if strings.EqualFold(candidate.Name(), section) {
			found = candidate
			break
		}
	}
	if found == nil {
		return nil, fmt.Errorf("section %s: %w", section, ErrKeyNotFound)
	}
	key, err := found.GetKey(name)
	if err != nil {
		return nil, fmt.Errorf("%s:%s: %w", section, name, ErrKeyNotFound)
	}
	return key, nil
}

func (s *iniSource) Int(section, name string) (int, error) {
	key, err := s.key(section, name)
	if err != nil {
		return 0, err
	}
	// Integer fields are 32-bit; anything wider is malformed.
	value, err := strconv.ParseInt(strings.TrimSpace(key.String()), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%s:%s=%q: %w", section, name, key.String(), ErrInvalidValue)
	}
	return int(value), nil
}

func (s *iniSource) Float(section, name string) (float64, error) {
	key, err := s.key(section, name)
	if err != nil {
		return 0, err
	}
	value, err := key.Float64()
	if err != nil {
		return 0, fmt.Errorf("%s:%s=%q: %w", section, name, key.String(), ErrInvalidValue)
	}
	return value, nil
}

func (s *iniSource) String(section, name string) (string, error) {
	key, err := s.key(section, name)
	if err != nil {
		return "", err
	}
	return key.String(), nil
}
