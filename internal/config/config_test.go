// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "auto" {
		t.Errorf("default theme = %q, want auto", cfg.UI.Theme)
	}
	if cfg.Backend.LatencyScale != 1.0 {
		t.Errorf("default latency scale = %v, want 1.0", cfg.Backend.LatencyScale)
	}
	if cfg.Cache.ReadRetries != 2 || cfg.Cache.WriteRetries != 1 {
		t.Errorf("default retries = %d/%d, want 2/1", cfg.Cache.ReadRetries, cfg.Cache.WriteRetries)
	}
	if !cfg.Poll.Messages || !cfg.Poll.Expiring || cfg.Poll.ExpiringDays != 7 {
		t.Errorf("default polling = %+v", cfg.Poll)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate, got %v", err)
	}
}

func TestLoadFromPath_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_dir = "/tmp/leptinchef-test"

[ui]
theme = "dark"
sidebar_collapsed = true

[backend]
latency_scale = 0.5

[poll]
messages = false
expiring = true
expiring_days = 3
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.UI.Theme != "dark" || !cfg.UI.SidebarCollapsed {
		t.Errorf("ui config not loaded: %+v", cfg.UI)
	}
	if cfg.Backend.LatencyScale != 0.5 {
		t.Errorf("latency scale = %v, want 0.5", cfg.Backend.LatencyScale)
	}
	if cfg.Poll.Messages || !cfg.Poll.Expiring || cfg.Poll.ExpiringDays != 3 {
		t.Errorf("poll config not loaded: %+v", cfg.Poll)
	}

	// Unset fields fall back to defaults
	if cfg.Cache.ReadRetries != 2 {
		t.Errorf("missing cache settings should default, got %+v", cfg.Cache)
	}
	if cfg.Backend.DatabasePath != filepath.Join("/tmp/leptinchef-test", "leptinchef.db") {
		t.Errorf("database path should derive from data dir, got %q", cfg.Backend.DatabasePath)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"ui": {"theme": "light"}, "backend": {"latency_scale": 0}}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %q, want light", cfg.UI.Theme)
	}
	if cfg.Backend.LatencyScale != 0 {
		t.Errorf("explicit zero latency scale should be kept, got %v", cfg.Backend.LatencyScale)
	}
}

func TestLoadFromPath_InvalidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"solarized\"\n"), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("unknown theme should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad theme", func(c *Config) { c.UI.Theme = "sepia" }, true},
		{"negative latency", func(c *Config) { c.Backend.LatencyScale = -1 }, true},
		{"negative read retries", func(c *Config) { c.Cache.ReadRetries = -1 }, true},
		{"negative write retries", func(c *Config) { c.Cache.WriteRetries = -2 }, true},
		{"zero expiring days", func(c *Config) { c.Poll.ExpiringDays = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("LEPTINCHEF_THEME", "dark")
	t.Setenv("LEPTINCHEF_LATENCY_SCALE", "0.25")
	t.Setenv("LEPTINCHEF_POLLING", "false")
	t.Setenv("LEPTINCHEF_DATA_DIR", "/tmp/chef-data")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.UI.Theme != "dark" {
		t.Errorf("theme override not applied: %q", cfg.UI.Theme)
	}
	if cfg.Backend.LatencyScale != 0.25 {
		t.Errorf("latency override not applied: %v", cfg.Backend.LatencyScale)
	}
	if cfg.Poll.Messages || cfg.Poll.Expiring {
		t.Error("LEPTINCHEF_POLLING=false should disable both poll loops")
	}
	if cfg.DataDir != "/tmp/chef-data" {
		t.Errorf("data dir override not applied: %q", cfg.DataDir)
	}
}

func TestSaveTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.UI.Theme = "dark"
	cfg.Poll.ExpiringDays = 5
	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.UI.Theme != "dark" || loaded.Poll.ExpiringDays != 5 {
		t.Errorf("round-trip mismatch: %+v", loaded)
	}
}
