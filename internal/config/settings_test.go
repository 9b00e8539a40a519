package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write settings failed: %v", err)
	}
	return path
}

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", s)
	}
	if s.TargetDuration() != DefaultTargetFast {
		t.Fatalf("expected default target, got %v", s.TargetDuration())
	}
}

func TestLoadSettingsEmptyPath(t *testing.T) {
	s, err := LoadSettings("  ")
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.Store != StoreMemory {
		t.Fatalf("expected memory store, got %q", s.Store)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	path := writeSettings(t, "theme: dracula\nstore: sqlite\ntarget_hours: 18.5\nreports_dir: /tmp/reports\n")
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.Theme != "dracula" || s.Store != StoreSQLite || s.ReportsDir != "/tmp/reports" {
		t.Fatalf("unexpected settings %+v", s)
	}
	if want := 18*time.Hour + 30*time.Minute; s.TargetDuration() != want {
		t.Fatalf("expected %v target, got %v", want, s.TargetDuration())
	}
}

func TestLoadSettingsPartialKeepsDefaults(t *testing.T) {
	path := writeSettings(t, "theme: dracula\n")
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.Store != StoreMemory {
		t.Fatalf("expected default store to survive, got %q", s.Store)
	}
}

func TestLoadSettingsRejectsUnknownStore(t *testing.T) {
	path := writeSettings(t, "store: postgres\n")
	if _, err := LoadSettings(path); !errors.Is(err, ErrUnknownStore) {
		t.Fatalf("expected ErrUnknownStore, got %v", err)
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := writeSettings(t, "theme: [unterminated\n")
	if _, err := LoadSettings(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateNegativeTarget(t *testing.T) {
	s := DefaultSettings()
	s.TargetHours = -1
	if err := s.Validate(); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
}
