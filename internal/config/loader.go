package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFromPath reads a configuration file (YAML or JSON) and returns the
// parsed record. Format is detected by extension (.yaml/.yml, .json) or by
// content (first non-whitespace char).
func LoadFromPath(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses a configuration record from bytes. ext is the file extension
// used as a format hint; empty means detect from content.
func Load(data []byte, ext string) (*File, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" {
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			ext = ".json"
		} else {
			ext = ".yaml"
		}
	}

	var f File
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	case ".yaml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("parse config: unsupported extension %q", ext)
	}
	return &f, nil
}

// LoadTask reads and normalizes a configuration file in one step.
func LoadTask(path string) (*Task, error) {
	f, err := LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	return Normalize(*f)
}
