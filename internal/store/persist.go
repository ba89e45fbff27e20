// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides the client-side state containers.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/leptinchef/leptinchef-tui/internal/util"
)

// =============================================================================
// SNAPSHOT DIRECTORY
// =============================================================================

// Dir is the serialization boundary for container snapshots. Each container
// owns one named snapshot file under the directory; snapshots hold only the
// fields that survive a restart.
type Dir struct {
	// BasePath is the directory holding the snapshot files,
	// e.g. ~/.leptinchef/state/
	BasePath string
}

// NewDir creates the snapshot directory if needed.
func NewDir(basePath string) (*Dir, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, err
	}
	return &Dir{BasePath: basePath}, nil
}

// Load reads the named snapshot into v.
// Returns ErrSnapshotNotFound when no snapshot exists yet.
func (d *Dir) Load(name string, v any) error {
	data, err := os.ReadFile(d.filePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrSnapshotNotFound
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// Save writes the named snapshot atomically.
func (d *Dir) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	return util.AtomicWriteFile(d.filePath(name), data, 0644)
}

// Remove deletes the named snapshot. Missing snapshots are not an error.
func (d *Dir) Remove(name string) error {
	err := os.Remove(d.filePath(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// filePath returns the file path for a snapshot name.
func (d *Dir) filePath(name string) string {
	return filepath.Join(d.BasePath, name+".json")
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrSnapshotNotFound is returned when a container has no saved snapshot.
// Use errors.Is(err, ErrSnapshotNotFound) to check for this error.
var ErrSnapshotNotFound = &SnapshotError{Message: "snapshot not found"}

// SnapshotError represents a snapshot persistence error.
// It implements the error interface and can be compared using errors.Is.
type SnapshotError struct {
	Message string
}

// Error implements the error interface.
func (e *SnapshotError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing snapshot errors.
func (e *SnapshotError) Is(target error) bool {
	t, ok := target.(*SnapshotError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
