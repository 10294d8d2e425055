package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type tomlSource struct {
	tables map[string]map[string]any
}

// OpenTOML parses a TOML file. Only top-level tables are treated as sections.
func OpenTOML(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read toml %s: %w", path, err)
	}
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse toml %s: %w", path, err)
	}
	src := &tomlSource{tables: make(map[string]map[string]any)}
	for name, value := range tree {
		if table, ok := value.(map[string]any); ok {
			src.tables[name] = table
		}
	}
	return src, nil
}

func (s *tomlSource) Sections() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	return names
}

func (s *tomlSource) value(section, key string) (any, error) {
	var table map[string]any
	for name, candidate := range s.tables {
		if strings.EqualFold(name, section) {
			table = candidate
			break
		}
	}
	if table == nil {
		return nil, fmt.Errorf("section %s: %w", section, ErrKeyNotFound)
	}
	for name, value := range table {
		if strings.EqualFold(name, key) {
			return value, nil
		}
	}
	return nil, fmt.Errorf("%s:%s: %w", section, key, ErrKeyNotFound)
}

func (s *tomlSource) Int(section, key string) (int, error) {
	raw, err := s.value(section, key)
	if err != nil {
		return 0, err
	}
	value, ok := raw.(int64)
	if !ok || value < math.MinInt32 || value > math.MaxInt32 {
		return 0, fmt.Errorf("%s:%s=%v: %w", section, key, raw, ErrInvalidValue)
	}
	return int(value), nil
}

func (s *tomlSource) Float(section, key string) (float64, error) {
	raw, err := s.value(section, key)
	if err != nil {
		return 0, err
	}
	switch value := raw.(type) {
	case float64:
		return value, nil
	case int64:
		return float64(value), nil
	default:
		return 0, fmt.Errorf("%s:%s=%v: %w", section, key, raw, ErrInvalidValue)
	}
}

func (s *tomlSource) String(section, key string) (string, error) {
	raw, err := s.value(section, key)
	if err != nil {
		return "", err
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s:%s=%v: %w", section, key, raw, ErrInvalidValue)
	}
	return value, nil
}
