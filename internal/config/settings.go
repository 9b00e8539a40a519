package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownStore  = errors.New("unknown session store")
	ErrInvalidTarget = errors.New("target fast length must not be negative")
)

// Settings holds the user-tunable options read from config.yaml.
type Settings struct {
	Theme       string  `yaml:"theme"`
	Store       string  `yaml:"store"`
	TargetHours float64 `yaml:"target_hours"`
	ReportsDir  string  `yaml:"reports_dir"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:       DefaultTheme,
		Store:       StoreMemory,
		TargetHours: DefaultTargetFast.Hours(),
	}
}

// LoadSettings reads path on top of the defaults. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if strings.TrimSpace(path) == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, s.Validate()
}

func (s Settings) Validate() error {
	switch s.Store {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, s.Store)
	}
	if s.TargetHours < 0 {
		return ErrInvalidTarget
	}
	return nil
}

// TargetDuration converts TargetHours; zero disables the progress bar.
func (s Settings) TargetDuration() time.Duration {
	return time.Duration(s.TargetHours * float64(time.Hour))
}
