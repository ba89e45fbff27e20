// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// STRING TESTS
// =============================================================================

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"short string unchanged", "soup", 10, "soup"},
		{"exact length unchanged", "soup", 4, "soup"},
		{"truncated with ellipsis", "chicken noodle soup", 10, "chicken..."},
		{"zero max", "soup", 0, ""},
		{"tiny max no ellipsis", "soup", 2, "so"},
		{"unicode safe", "日本語のレシピです", 5, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateRunes(tt.input, tt.maxRunes)
			if got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	// CJK characters are 2 columns wide
	got := TruncateWidth("日本語", 4)
	if StringWidth(got) > 4 {
		t.Errorf("TruncateWidth produced width %d, want <= 4", StringWidth(got))
	}

	if TruncateWidth("soup", 10) != "soup" {
		t.Error("short string should be unchanged")
	}
}

func TestFlatten(t *testing.T) {
	if got := Flatten("a\r\nb\nc"); got != "a b c" {
		t.Errorf("Flatten = %q, want %q", got, "a b c")
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("日本語"); got != 3 {
		t.Errorf("RuneLen = %d, want 3", got)
	}
}

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "snapshot.json")

	if err := AtomicWriteFile(path, []byte(`{"ok":true}`), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("content = %q", string(data))
	}

	// Overwrite replaces content atomically
	if err := AtomicWriteFile(path, []byte(`{"ok":false}`), 0644); err != nil {
		t.Fatalf("second AtomicWriteFile failed: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != `{"ok":false}` {
		t.Errorf("content after overwrite = %q", string(data))
	}

	// No temp files left behind
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected 1 file in dir, found %d", len(entries))
	}
}
