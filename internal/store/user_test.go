// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"testing"
	"time"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

func newTestUserStore(t *testing.T) *UserStore {
	t.Helper()
	dir, err := NewDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewDir failed: %v", err)
	}
	return NewUserStore(dir)
}

func TestUserStore_Defaults(t *testing.T) {
	s := newTestUserStore(t)

	u := s.User()
	if u == nil {
		t.Fatal("default user should exist before any identity is set")
	}
	if u.ID != "default-user" || u.DisplayName != "User" {
		t.Errorf("unexpected default user: %+v", u)
	}
	if u.MeasurementStyle != model.MeasurementMetric {
		t.Error("default user should use metric")
	}

	p := s.Preferences()
	if p.MeasurementStyle != model.MeasurementMetric || !p.Notifications || p.Theme != model.ThemeAuto {
		t.Errorf("unexpected default preferences: %+v", p)
	}
	if p.DefaultServings != 2 || !p.AutoSaveRecipes || p.ShowNutritionalInfo {
		t.Errorf("unexpected default preferences: %+v", p)
	}
	if s.IsAuthenticated() {
		t.Error("default session is unauthenticated")
	}
}

// =============================================================================
// MEASUREMENT STYLE SYNC
// =============================================================================

func TestUserStore_SetUserSyncsPreferences(t *testing.T) {
	s := newTestUserStore(t)

	now := time.Now()
	s.SetUser(model.User{
		ID:               "user_1",
		DisplayName:      "Alex",
		MeasurementStyle: model.MeasurementUS,
		CreatedAt:        now,
		UpdatedAt:        now,
	})

	if !s.IsAuthenticated() {
		t.Error("SetUser should mark the session authenticated")
	}
	if s.Preferences().MeasurementStyle != model.MeasurementUS {
		t.Error("preferences must follow the incoming user's measurement style")
	}
}

func TestUserStore_UpdatePreferencesSyncsUser(t *testing.T) {
	s := newTestUserStore(t)

	us := model.MeasurementUS
	s.UpdatePreferences(model.PreferencesPatch{MeasurementStyle: &us})

	if s.Preferences().MeasurementStyle != model.MeasurementUS {
		t.Error("preference style should be updated")
	}
	if got := s.User().MeasurementStyle; got != model.MeasurementUS {
		t.Errorf("user style should follow preferences, got %q", got)
	}
}

func TestUserStore_UpdateUserSyncsPreferences(t *testing.T) {
	s := newTestUserStore(t)

	us := model.MeasurementUS
	s.UpdateUser(model.UserPatch{MeasurementStyle: &us})

	if s.User().MeasurementStyle != model.MeasurementUS {
		t.Error("user style should be updated")
	}
	if s.Preferences().MeasurementStyle != model.MeasurementUS {
		t.Error("preference style should follow the user")
	}
}

// =============================================================================
// USER MUTATIONS
// =============================================================================

func TestUserStore_EmptyPatchTouchesOnlyUpdatedAt(t *testing.T) {
	s := newTestUserStore(t)

	before := *s.User()
	s.UpdateUser(model.UserPatch{})
	after := *s.User()

	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Error("UpdatedAt must strictly increase even for an empty patch")
	}
	after.UpdatedAt = before.UpdatedAt
	if after != before {
		t.Errorf("empty patch must change nothing else: before=%+v after=%+v", before, after)
	}
}

func TestUserStore_UpdatedAtStrictlyIncreases(t *testing.T) {
	s := newTestUserStore(t)

	// A frozen clock still yields monotonically increasing timestamps.
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return fixed })

	name := "A"
	s.UpdateUser(model.UserPatch{DisplayName: &name})
	first := s.User().UpdatedAt

	s.UpdateUser(model.UserPatch{})
	second := s.User().UpdatedAt

	if !second.After(first) {
		t.Errorf("UpdatedAt did not increase: %v then %v", first, second)
	}
}

func TestUserStore_UpdateUserWithoutUser(t *testing.T) {
	s := newTestUserStore(t)
	s.ClearUser()

	name := "ghost"
	s.UpdateUser(model.UserPatch{DisplayName: &name})

	if s.User() != nil {
		t.Error("updating with no user present must be a no-op")
	}
}

func TestUserStore_ClearUserKeepsPreferences(t *testing.T) {
	s := newTestUserStore(t)

	us := model.MeasurementUS
	s.UpdatePreferences(model.PreferencesPatch{MeasurementStyle: &us})
	s.SetAuthenticated(true)

	s.ClearUser()

	if s.User() != nil {
		t.Error("user should be removed")
	}
	if s.IsAuthenticated() {
		t.Error("authenticated flag should be cleared")
	}
	if s.Preferences().MeasurementStyle != model.MeasurementUS {
		t.Error("preferences must survive ClearUser")
	}
}

func TestUserStore_ResetToDefaults(t *testing.T) {
	s := newTestUserStore(t)

	us := model.MeasurementUS
	s.SetUser(model.User{ID: "user_1", DisplayName: "Alex", MeasurementStyle: us})
	dark := model.ThemeDark
	s.UpdatePreferences(model.PreferencesPatch{Theme: &dark})

	s.ResetToDefaults()

	if u := s.User(); u == nil || u.ID != "default-user" {
		t.Error("reset should restore the default user")
	}
	if p := s.Preferences(); p.Theme != model.ThemeAuto || p.MeasurementStyle != model.MeasurementMetric {
		t.Error("reset should restore default preferences")
	}
	if s.IsAuthenticated() {
		t.Error("reset should drop authentication")
	}
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func TestUserStore_PersistedWholesale(t *testing.T) {
	base := t.TempDir()
	dir, _ := NewDir(base)

	s := NewUserStore(dir)
	s.SetUser(model.User{ID: "user_7", DisplayName: "Robin", MeasurementStyle: model.MeasurementUS})
	three := 3
	s.UpdatePreferences(model.PreferencesPatch{DefaultServings: &three})

	dir2, _ := NewDir(base)
	restored := NewUserStore(dir2)

	u := restored.User()
	if u == nil || u.ID != "user_7" || u.DisplayName != "Robin" {
		t.Fatalf("user should survive restart, got %+v", u)
	}
	if restored.Preferences().DefaultServings != 3 {
		t.Error("preferences should survive restart")
	}
	if !restored.IsAuthenticated() {
		t.Error("authenticated flag should survive restart")
	}
	if restored.Preferences().MeasurementStyle != u.MeasurementStyle {
		t.Error("restored state must preserve the style sync invariant")
	}
}

func TestUserStore_ClearedUserSurvivesRestart(t *testing.T) {
	base := t.TempDir()
	dir, _ := NewDir(base)

	s := NewUserStore(dir)
	s.ClearUser()

	dir2, _ := NewDir(base)
	restored := NewUserStore(dir2)

	if restored.User() != nil {
		t.Error("a cleared user must stay cleared after restart")
	}
}
