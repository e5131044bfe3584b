package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings are the optional, non-secret knobs read from the YAML file.
type Settings struct {
	RequestTimeout time.Duration `yaml:"request_timeout"`
	LogFile        string        `yaml:"log_file"`
}

// DefaultSettingsPath returns ~/.chatwoot/tui.yaml, or "" when the home
// directory cannot be resolved.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chatwoot", "tui.yaml")
}

// LoadSettings reads path. When explicit is false a missing file yields zero
// settings; an explicitly requested file must exist.
func LoadSettings(path string, explicit bool) (Settings, error) {
	if path == "" {
		return Settings{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if s.RequestTimeout < 0 {
		return Settings{}, fmt.Errorf("request_timeout must not be negative: %s", s.RequestTimeout)
	}
	return s, nil
}
