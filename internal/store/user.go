// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides the client-side state containers.
package store

import (
	"sync"
	"time"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// userSnapshotName is the snapshot file name for the user container.
const userSnapshotName = "user"

// =============================================================================
// USER STORE
// =============================================================================

// UserStore holds the current user's profile, derived preferences, and the
// authenticated flag.
//
// Invariant: preferences.MeasurementStyle and user.MeasurementStyle never
// diverge after any single operation completes — every mutation path that
// changes one re-synchronizes the other.
type UserStore struct {
	mu sync.Mutex

	// All fields survive restart
	user            *model.User // nil = no user
	preferences     model.Preferences
	isAuthenticated bool

	// Collaborators
	now func() time.Time
	dir *Dir

	lastSaveErr error
}

// userSnapshot is the persisted form of the user container.
type userSnapshot struct {
	User            *model.User       `json:"user,omitempty"`
	Preferences     model.Preferences `json:"preferences"`
	IsAuthenticated bool              `json:"is_authenticated"`
}

// NewUserStore creates a user container. Before any real identity is
// established a process-wide default user exists; a saved snapshot replaces
// the defaults wholesale.
func NewUserStore(dir *Dir) *UserStore {
	now := time.Now
	defaultUser := model.DefaultUser(now())

	s := &UserStore{
		user:        &defaultUser,
		preferences: model.DefaultPreferences(),
		now:         now,
		dir:         dir,
	}

	if dir != nil {
		var snap userSnapshot
		if err := dir.Load(userSnapshotName, &snap); err == nil {
			s.user = snap.User
			s.preferences = snap.Preferences
			s.isAuthenticated = snap.IsAuthenticated
		}
	}

	return s
}

// SetClock overrides the time source. Intended for tests.
func (s *UserStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// =============================================================================
// USER MUTATIONS
// =============================================================================

// SetUser replaces the user wholesale, marks the session authenticated, and
// synchronizes preferences.MeasurementStyle to the incoming user's style
// (one-directional sync: user -> preferences).
func (s *UserStore) SetUser(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user
	s.user = &u
	s.isAuthenticated = true
	s.preferences.MeasurementStyle = u.MeasurementStyle
	s.saveLocked()
}

// UpdateUser merges the patch into the current user and refreshes
// UpdatedAt. No-op when no user is present. A measurement-style change
// re-synchronizes preferences.
func (s *UserStore) UpdateUser(patch model.UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}

	if patch.DisplayName != nil {
		s.user.DisplayName = *patch.DisplayName
	}
	if patch.ProfilePicture != nil {
		s.user.ProfilePicture = *patch.ProfilePicture
	}
	if patch.MeasurementStyle != nil {
		s.user.MeasurementStyle = *patch.MeasurementStyle
		s.preferences.MeasurementStyle = *patch.MeasurementStyle
	}

	s.touchUserLocked()
	s.saveLocked()
}

// ClearUser removes the user and clears the authenticated flag.
// Preferences are NOT reset.
func (s *UserStore) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.isAuthenticated = false
	s.saveLocked()
}

// =============================================================================
// PREFERENCES
// =============================================================================

// UpdatePreferences merges the patch into preferences. A measurement-style
// change propagates back into the user when one exists (preferences ->
// user, mirroring the user -> preferences direction in SetUser).
func (s *UserStore) UpdatePreferences(patch model.PreferencesPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.MeasurementStyle != nil {
		s.preferences.MeasurementStyle = *patch.MeasurementStyle
		if s.user != nil {
			s.user.MeasurementStyle = *patch.MeasurementStyle
			s.touchUserLocked()
		}
	}
	if patch.Notifications != nil {
		s.preferences.Notifications = *patch.Notifications
	}
	if patch.Theme != nil {
		s.preferences.Theme = *patch.Theme
	}
	if patch.AutoSaveRecipes != nil {
		s.preferences.AutoSaveRecipes = *patch.AutoSaveRecipes
	}
	if patch.ShowNutritionalInfo != nil {
		s.preferences.ShowNutritionalInfo = *patch.ShowNutritionalInfo
	}
	if patch.DefaultServings != nil {
		s.preferences.DefaultServings = *patch.DefaultServings
	}

	s.saveLocked()
}

// =============================================================================
// AUTHENTICATION
// =============================================================================

// SetAuthenticated sets the flag directly, independent of user presence.
// A true flag with no user is the caller's responsibility.
func (s *UserStore) SetAuthenticated(authenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isAuthenticated = authenticated
	s.saveLocked()
}

// ResetToDefaults restores the default user, default preferences, and an
// unauthenticated session.
func (s *UserStore) ResetToDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaultUser := model.DefaultUser(s.now())
	s.user = &defaultUser
	s.preferences = model.DefaultPreferences()
	s.isAuthenticated = false
	s.saveLocked()
}

// =============================================================================
// ACCESSORS
// =============================================================================

// User returns a copy of the current user, or nil when absent.
func (s *UserStore) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Preferences returns a copy of the current preferences.
func (s *UserStore) Preferences() model.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferences
}

// IsAuthenticated returns the authenticated flag.
func (s *UserStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAuthenticated
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// Flush re-writes the snapshot and returns the persistence error, if any.
func (s *UserStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked()
	return s.lastSaveErr
}

// touchUserLocked advances UpdatedAt, guaranteeing a strict increase even
// when the clock is coarse (must hold lock).
func (s *UserStore) touchUserLocked() {
	t := s.now()
	if !t.After(s.user.UpdatedAt) {
		t = s.user.UpdatedAt.Add(time.Nanosecond)
	}
	s.user.UpdatedAt = t
}

// saveLocked persists the snapshot (must hold lock).
func (s *UserStore) saveLocked() {
	if s.dir == nil {
		return
	}
	s.lastSaveErr = s.dir.Save(userSnapshotName, userSnapshot{
		User:            s.user,
		Preferences:     s.preferences,
		IsAuthenticated: s.isAuthenticated,
	})
}
