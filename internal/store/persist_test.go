// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDir_SaveLoad(t *testing.T) {
	dir, err := NewDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewDir failed: %v", err)
	}

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := dir.Save("sample", payload{Name: "chef", Count: 3}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var got payload
	if err := dir.Load("sample", &got); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Name != "chef" || got.Count != 3 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestDir_LoadMissing(t *testing.T) {
	dir, _ := NewDir(t.TempDir())

	var v struct{}
	err := dir.Load("never-saved", &v)
	if !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestDir_Remove(t *testing.T) {
	dir, _ := NewDir(t.TempDir())

	if err := dir.Save("gone", map[string]int{"a": 1}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := dir.Remove("gone"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	var v map[string]int
	if err := dir.Load("gone", &v); !errors.Is(err, ErrSnapshotNotFound) {
		t.Error("snapshot should be gone after Remove")
	}

	// Removing an already-missing snapshot is not an error
	if err := dir.Remove("gone"); err != nil {
		t.Errorf("removing a missing snapshot should succeed, got %v", err)
	}
}

func TestNewDir_CreatesDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "state")

	if _, err := NewDir(base); err != nil {
		t.Fatalf("NewDir failed: %v", err)
	}
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		t.Error("NewDir should create the directory tree")
	}
}
