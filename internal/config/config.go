// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading for leptinchef.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.leptinchef/config.toml
//   - ~/.leptinchef/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/leptinchef/leptinchef-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete leptinchef configuration.
type Config struct {
	// DataDir is where snapshots and the mock database live.
	// Empty means ~/.leptinchef
	DataDir string `toml:"data_dir" json:"data_dir"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Backend (mock collaborator) configuration
	Backend BackendConfig `toml:"backend" json:"backend"`

	// Cache (request layer) configuration
	Cache CacheConfig `toml:"cache" json:"cache"`

	// Poll (background refresh) configuration
	Poll PollConfig `toml:"poll" json:"poll"`
}

// UIConfig contains presentation configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// SidebarCollapsed starts the sidebar collapsed
	SidebarCollapsed bool `toml:"sidebar_collapsed" json:"sidebar_collapsed"`
}

// BackendConfig contains mock backend configuration.
type BackendConfig struct {
	// LatencyScale multiplies the mock's artificial latencies.
	// 1.0 approximates a remote backend, 0 disables latency.
	LatencyScale float64 `toml:"latency_scale" json:"latency_scale"`
	// DatabasePath is the SQLite file for the mock backend.
	// Empty means <data_dir>/leptinchef.db; ":memory:" keeps nothing.
	DatabasePath string `toml:"database_path" json:"database_path"`
}

// CacheConfig contains request-cache configuration.
type CacheConfig struct {
	// ReadRetries is the number of retries after a failed read.
	ReadRetries int `toml:"read_retries" json:"read_retries"`
	// WriteRetries is the number of retries after a failed mutation.
	WriteRetries int `toml:"write_retries" json:"write_retries"`
}

// PollConfig contains background polling configuration.
type PollConfig struct {
	// Messages enables transcript polling for the open conversation.
	Messages bool `toml:"messages" json:"messages"`
	// Expiring enables expiring-inventory polling.
	Expiring bool `toml:"expiring" json:"expiring"`
	// ExpiringDays is the expiry window in days.
	ExpiringDays int `toml:"expiring_days" json:"expiring_days"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:            "auto",
			SidebarCollapsed: false,
		},
		Backend: BackendConfig{
			LatencyScale: 1.0,
		},
		Cache: CacheConfig{
			ReadRetries:  2,
			WriteRetries: 1,
		},
		Poll: PollConfig{
			Messages:     true,
			Expiring:     true,
			ExpiringDays: 7,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the leptinchef configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".leptinchef"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			return LoadFromPath(tomlPath)
		}
	}

	if jsonPath, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			return LoadFromPath(jsonPath)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. JSON is detected by extension; anything else parses as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read JSON config from %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode JSON config from %s: %w", path, err)
		}
	} else {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func (c *Config) fillDefaults() {
	defaults := Default()

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.Cache.ReadRetries == 0 {
		c.Cache.ReadRetries = defaults.Cache.ReadRetries
	}
	if c.Cache.WriteRetries == 0 {
		c.Cache.WriteRetries = defaults.Cache.WriteRetries
	}
	if c.Poll.ExpiringDays == 0 {
		c.Poll.ExpiringDays = defaults.Poll.ExpiringDays
	}
	if c.DataDir == "" {
		if dir, err := ConfigDir(); err == nil {
			c.DataDir = dir
		}
	}
	if c.Backend.DatabasePath == "" && c.DataDir != "" {
		c.Backend.DatabasePath = filepath.Join(c.DataDir, "leptinchef.db")
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - LEPTINCHEF_DATA_DIR: overrides data_dir
//   - LEPTINCHEF_THEME: overrides ui.theme
//   - LEPTINCHEF_LATENCY_SCALE: overrides backend.latency_scale
//   - LEPTINCHEF_DB_PATH: overrides backend.database_path
//   - LEPTINCHEF_POLLING: "0" or "false" disables both poll loops
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("LEPTINCHEF_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}

	if theme := os.Getenv("LEPTINCHEF_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if scale := os.Getenv("LEPTINCHEF_LATENCY_SCALE"); scale != "" {
		if v, err := strconv.ParseFloat(scale, 64); err == nil {
			c.Backend.LatencyScale = v
		}
	}

	if path := os.Getenv("LEPTINCHEF_DB_PATH"); path != "" {
		c.Backend.DatabasePath = path
	}

	if polling := os.Getenv("LEPTINCHEF_POLLING"); polling != "" {
		enabled := polling != "0" && strings.ToLower(polling) != "false"
		c.Poll.Messages = enabled
		c.Poll.Expiring = enabled
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "light", "dark", "auto":
	default:
		return ValidationError{Field: "ui.theme", Message: "must be light, dark, or auto"}
	}

	if c.Backend.LatencyScale < 0 {
		return ValidationError{Field: "backend.latency_scale", Message: "cannot be negative"}
	}
	if c.Cache.ReadRetries < 0 {
		return ValidationError{Field: "cache.read_retries", Message: "cannot be negative"}
	}
	if c.Cache.WriteRetries < 0 {
		return ValidationError{Field: "cache.write_retries", Message: "cannot be negative"}
	}
	if c.Poll.ExpiringDays < 1 {
		return ValidationError{Field: "poll.expiring_days", Message: "must be a positive integer"}
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# leptinchef configuration file")
	fmt.Fprintln(file, "# Generated by leptinchef - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// SaveJSON saves the configuration to a JSON file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveJSON(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
