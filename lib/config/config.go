// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration.
type Config struct {
	// Service configures the connection to the news service.
	Service ServiceConfig `yaml:"service"`

	// UI configures terminal UI behavior.
	UI UIConfig `yaml:"ui"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`
}

// ServiceConfig configures the connection to the news service.
type ServiceConfig struct {
	// URL is the base URL of the news service.
	// Default: http://localhost:8000
	URL string `yaml:"url"`

	// Timeout is the per-request timeout as a Go duration string.
	// Default: 15s
	Timeout string `yaml:"timeout"`
}

// UIConfig configures terminal UI behavior.
type UIConfig struct {
	// MaxOpenEdits is how many inline edits may be open at once.
	// Default: 1
	MaxOpenEdits int `yaml:"max_open_edits"`

	// ThemeFile is an optional JSONC file overriding the built-in
	// color theme. Default: empty (built-in theme).
	ThemeFile string `yaml:"theme_file"`

	// StatusFadeSeconds is how long status bar messages stay visible.
	// Default: 5
	StatusFadeSeconds int `yaml:"status_fade_seconds"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Output is a file path for JSON log output. Empty disables
	// file logging; the TUI shows warnings in the status bar either
	// way.
	Output string `yaml:"output"`

	// Level is the minimum level: debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the default configuration. The config file is
// optional for the client; these defaults are complete enough to run
// against a local service with no file at all.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			URL:     "http://localhost:8000",
			Timeout: "15s",
		},
		UI: UIConfig{
			MaxOpenEdits:      1,
			StatusFadeSeconds: 5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// FilePath returns the config file path: NEWSROOM_CONFIG if set,
// otherwise $XDG_CONFIG_HOME/newsroom/config.yaml.
func FilePath() string {
	if path := os.Getenv("NEWSROOM_CONFIG"); path != "" {
		return path
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "newsroom", "config.yaml")
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "newsroom", "config.yaml")
}

// Load loads configuration from the default path. A missing file is
// not an error: the client runs fine on defaults.
func Load() (*Config, error) {
	return LoadFile(FilePath())
}

// LoadFile loads configuration from a specific file path, merging over
// the defaults. A missing file returns defaults. Environment variables
// do not override config values; the only expansion performed is
// ${VAR} and ${VAR:-default} in path-valued fields for portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.expandVariables()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in
// path-valued fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.UI.ThemeFile = expandVars(c.UI.ThemeFile, vars)
	c.Log.Output = expandVars(c.Log.Output, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Service.URL == "" {
		errs = append(errs, fmt.Errorf("service.url is required"))
	}
	if _, err := time.ParseDuration(c.Service.Timeout); err != nil {
		errs = append(errs, fmt.Errorf("service.timeout: %w", err))
	}
	if c.UI.MaxOpenEdits < 1 {
		errs = append(errs, fmt.Errorf("ui.max_open_edits must be at least 1"))
	}
	if c.UI.StatusFadeSeconds < 1 {
		errs = append(errs, fmt.Errorf("ui.status_fade_seconds must be at least 1"))
	}

	levels := []string{"debug", "info", "warn", "error"}
	if !contains(levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", levels))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// RequestTimeout returns the parsed per-request timeout.
func (c *Config) RequestTimeout() time.Duration {
	timeout, err := time.ParseDuration(c.Service.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return timeout
}

// StatusFade returns the status bar fade delay.
func (c *Config) StatusFade() time.Duration {
	return time.Duration(c.UI.StatusFadeSeconds) * time.Second
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
