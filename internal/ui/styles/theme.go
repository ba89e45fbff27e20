// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// =============================================================================
// THEME
// =============================================================================

// Theme holds the styled components for the application.
type Theme struct {
	// Resolved background mode
	IsDark bool

	// Layout
	App     lipgloss.Style
	Sidebar lipgloss.Style
	Content lipgloss.Style

	// Sidebar entries
	NavItem       lipgloss.Style
	NavItemActive lipgloss.Style

	// Header and status bar
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	StatusBar lipgloss.Style
	StatusKey lipgloss.Style

	// Chat bubbles
	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	ChatError       lipgloss.Style

	// Lists
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ListMeta     lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style

	// Semantic text
	Muted   lipgloss.Style
	Danger  lipgloss.Style
	Warning lipgloss.Style
	Good    lipgloss.Style

	// Input
	InputPrompt lipgloss.Style
}

// New builds a theme for the given preference. ThemeAuto asks the terminal
// for its background; light and dark force the corresponding palette.
func New(pref model.Theme) *Theme {
	isDark := termenv.HasDarkBackground()
	switch pref {
	case model.ThemeLight:
		isDark = false
	case model.ThemeDark:
		isDark = true
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{IsDark: isDark}

	t.App = lipgloss.NewStyle().Foreground(TextPrimary)
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(Overlay).
		PaddingRight(1)
	t.Content = lipgloss.NewStyle().Padding(0, 1)

	t.NavItem = lipgloss.NewStyle().Foreground(TextSecondary).Padding(0, 1)
	t.NavItemActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Green).
		Bold(true).
		Padding(0, 1)

	t.Title = lipgloss.NewStyle().Foreground(Green).Bold(true)
	t.Subtitle = lipgloss.NewStyle().Foreground(TextSecondary)
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)
	t.StatusKey = lipgloss.NewStyle().Foreground(Cyan).Bold(true)

	t.UserBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 1)
	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Green).
		Padding(0, 1)
	t.ChatError = lipgloss.NewStyle().Foreground(Rose).Bold(true)

	t.ListItem = lipgloss.NewStyle().Foreground(TextPrimary).Padding(0, 1)
	t.ListSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan).
		Bold(true).
		Padding(0, 1)
	t.ListMeta = lipgloss.NewStyle().Foreground(TextMuted)

	toast := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	t.ToastSuccess = toast.Foreground(TextInverse).Background(Green)
	t.ToastError = toast.Foreground(TextInverse).Background(Rose)
	t.ToastWarning = toast.Foreground(TextInverse).Background(Amber)
	t.ToastInfo = toast.Foreground(TextInverse).Background(Cyan)

	t.Muted = lipgloss.NewStyle().Foreground(TextMuted)
	t.Danger = lipgloss.NewStyle().Foreground(Rose)
	t.Warning = lipgloss.NewStyle().Foreground(Amber)
	t.Good = lipgloss.NewStyle().Foreground(Green)

	t.InputPrompt = lipgloss.NewStyle().Foreground(Green).Bold(true)

	return t
}
