// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the domain entities for the leptinchef client.
package model

import "time"

// =============================================================================
// MEASUREMENT STYLE
// =============================================================================

// MeasurementStyle selects between metric and US customary units.
type MeasurementStyle string

const (
	MeasurementMetric MeasurementStyle = "metric"
	MeasurementUS     MeasurementStyle = "us"
)

// String returns the string representation of the measurement style.
func (m MeasurementStyle) String() string {
	return string(m)
}

// Valid reports whether the value is a known measurement style.
func (m MeasurementStyle) Valid() bool {
	return m == MeasurementMetric || m == MeasurementUS
}

// =============================================================================
// USER TYPE
// =============================================================================

// User is the profile record for the person using the client.
// The backend is the source of truth; one "current user" copy lives in the
// user store for the process lifetime.
type User struct {
	// Identity
	ID string `json:"id"`

	// Profile
	DisplayName      string           `json:"display_name"`
	ProfilePicture   string           `json:"profile_picture,omitempty"` // Optional URL
	MeasurementStyle MeasurementStyle `json:"measurement_style"`

	// Timestamps. UpdatedAt >= CreatedAt and advances on every mutation.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultUser returns the process-wide default identity used before any
// real identity is established.
func DefaultUser(now time.Time) User {
	return User{
		ID:               "default-user",
		DisplayName:      "User",
		MeasurementStyle: MeasurementMetric,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// UserPatch is a partial update to a User. Nil fields are left unchanged.
type UserPatch struct {
	DisplayName      *string           `json:"display_name,omitempty"`
	ProfilePicture   *string           `json:"profile_picture,omitempty"`
	MeasurementStyle *MeasurementStyle `json:"measurement_style,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.DisplayName == nil && p.ProfilePicture == nil && p.MeasurementStyle == nil
}

// =============================================================================
// PREFERENCES
// =============================================================================

// Preferences holds the user's client-side preferences.
// MeasurementStyle is kept in sync with User.MeasurementStyle by the user
// store: every mutation path that changes one re-synchronizes the other.
type Preferences struct {
	MeasurementStyle    MeasurementStyle `json:"measurement_style"`
	Notifications       bool             `json:"notifications"`
	Theme               Theme            `json:"theme"`
	AutoSaveRecipes     bool             `json:"auto_save_recipes"`
	ShowNutritionalInfo bool             `json:"show_nutritional_info"`
	DefaultServings     int              `json:"default_servings"`
}

// DefaultPreferences returns the preferences used before the user changes
// anything.
func DefaultPreferences() Preferences {
	return Preferences{
		MeasurementStyle:    MeasurementMetric,
		Notifications:       true,
		Theme:               ThemeAuto,
		AutoSaveRecipes:     true,
		ShowNutritionalInfo: false,
		DefaultServings:     2,
	}
}

// PreferencesPatch is a partial update to Preferences.
type PreferencesPatch struct {
	MeasurementStyle    *MeasurementStyle `json:"measurement_style,omitempty"`
	Notifications       *bool             `json:"notifications,omitempty"`
	Theme               *Theme            `json:"theme,omitempty"`
	AutoSaveRecipes     *bool             `json:"auto_save_recipes,omitempty"`
	ShowNutritionalInfo *bool             `json:"show_nutritional_info,omitempty"`
	DefaultServings     *int              `json:"default_servings,omitempty"`
}

// =============================================================================
// THEME
// =============================================================================

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// String returns the string representation of the theme.
func (t Theme) String() string {
	return string(t)
}

// Valid reports whether the value is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeAuto
}
