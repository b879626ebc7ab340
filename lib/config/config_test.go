// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Service.URL != "http://localhost:8000" {
		t.Errorf("expected url=http://localhost:8000, got %s", cfg.Service.URL)
	}
	if cfg.UI.MaxOpenEdits != 1 {
		t.Errorf("expected max_open_edits=1, got %d", cfg.UI.MaxOpenEdits)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected level=info, got %s", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults fail validation: %v", err)
	}
}

func TestLoadFile_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFile with missing file: %v", err)
	}
	if cfg.Service.URL != Default().Service.URL {
		t.Errorf("missing file did not yield defaults: %s", cfg.Service.URL)
	}
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
service:
  url: https://news.example.com
ui:
  max_open_edits: 3
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if cfg.Service.URL != "https://news.example.com" {
		t.Errorf("expected url from file, got %s", cfg.Service.URL)
	}
	if cfg.UI.MaxOpenEdits != 3 {
		t.Errorf("expected max_open_edits=3, got %d", cfg.UI.MaxOpenEdits)
	}
	// Untouched sections keep their defaults.
	if cfg.Service.Timeout != "15s" {
		t.Errorf("expected default timeout, got %s", cfg.Service.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default level, got %s", cfg.Log.Level)
	}
}

func TestLoadFile_RejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
service:
  url: ""
  timeout: not-a-duration
log:
  level: loud
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFile(configPath); err == nil {
		t.Fatal("expected validation error, got nil")
	}
}

func TestExpandVariables(t *testing.T) {
	t.Setenv("HOME", "/home/reporter")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `
log:
  output: ${HOME}/.local/state/newsroom/client.log
ui:
  theme_file: ${NEWSROOM_THEME:-/etc/newsroom/theme.jsonc}
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if cfg.Log.Output != "/home/reporter/.local/state/newsroom/client.log" {
		t.Errorf("HOME not expanded: %s", cfg.Log.Output)
	}
	if cfg.UI.ThemeFile != "/etc/newsroom/theme.jsonc" {
		t.Errorf("default expansion failed: %s", cfg.UI.ThemeFile)
	}
}

func TestRequestTimeout(t *testing.T) {
	cfg := Default()
	if got := cfg.RequestTimeout(); got != 15*time.Second {
		t.Errorf("RequestTimeout = %v, want 15s", got)
	}
	cfg.Service.Timeout = "2m"
	if got := cfg.RequestTimeout(); got != 2*time.Minute {
		t.Errorf("RequestTimeout = %v, want 2m", got)
	}
}

func TestFilePath_EnvOverride(t *testing.T) {
	t.Setenv("NEWSROOM_CONFIG", "/tmp/custom.yaml")
	if got := FilePath(); got != "/tmp/custom.yaml" {
		t.Errorf("FilePath = %s, want env override", got)
	}

	t.Setenv("NEWSROOM_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := FilePath(); got != "/xdg/newsroom/config.yaml" {
		t.Errorf("FilePath = %s, want XDG path", got)
	}
}
