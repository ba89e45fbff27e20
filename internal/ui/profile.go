// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leptinchef/leptinchef-tui/internal/model"
	"github.com/leptinchef/leptinchef-tui/internal/store"
	"github.com/leptinchef/leptinchef-tui/internal/ui/styles"
)

// profileModel is the user and preferences page. Edits go straight to the
// user container; theme changes additionally flow back to the root model
// via the themeDirty flag.
type profileModel struct {
	theme *styles.Theme
	user  *store.UserStore

	themeDirty   bool
	pendingTheme model.Theme

	width  int
	height int
}

func newProfileModel(theme *styles.Theme, user *store.UserStore) profileModel {
	return profileModel{theme: theme, user: user}
}

func (m profileModel) update(msg tea.Msg) (profileModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "m":
		style := model.MeasurementUS
		if m.user.Preferences().MeasurementStyle == model.MeasurementUS {
			style = model.MeasurementMetric
		}
		m.user.UpdatePreferences(model.PreferencesPatch{MeasurementStyle: &style})

	case "t":
		next := nextTheme(m.user.Preferences().Theme)
		m.user.UpdatePreferences(model.PreferencesPatch{Theme: &next})
		m.pendingTheme = next
		m.themeDirty = true

	case "n":
		enabled := !m.user.Preferences().Notifications
		m.user.UpdatePreferences(model.PreferencesPatch{Notifications: &enabled})

	case "a":
		enabled := !m.user.Preferences().AutoSaveRecipes
		m.user.UpdatePreferences(model.PreferencesPatch{AutoSaveRecipes: &enabled})

	case "+":
		servings := m.user.Preferences().DefaultServings + 1
		m.user.UpdatePreferences(model.PreferencesPatch{DefaultServings: &servings})

	case "-":
		if servings := m.user.Preferences().DefaultServings - 1; servings >= 1 {
			m.user.UpdatePreferences(model.PreferencesPatch{DefaultServings: &servings})
		}
	}

	return m, nil
}

// nextTheme cycles auto -> light -> dark -> auto.
func nextTheme(t model.Theme) model.Theme {
	switch t {
	case model.ThemeAuto:
		return model.ThemeLight
	case model.ThemeLight:
		return model.ThemeDark
	default:
		return model.ThemeAuto
	}
}

func (m *profileModel) resize(width, height int) {
	m.width = width
	m.height = height
}

func (m profileModel) view() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("Profile"))
	b.WriteString("\n\n")

	user := m.user.User()
	if user == nil {
		b.WriteString(t.Muted.Render("No user. Preferences below still apply."))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n", t.Subtitle.Render("Name:"), user.DisplayName))
		b.WriteString(fmt.Sprintf("%s %s\n", t.Subtitle.Render("Units:"), user.MeasurementStyle))
		b.WriteString(fmt.Sprintf("%s %s\n", t.Subtitle.Render("Member since:"), user.CreatedAt.Format("Jan 2, 2006")))
	}
	if m.user.IsAuthenticated() {
		b.WriteString(t.Good.Render("Signed in"))
	} else {
		b.WriteString(t.Muted.Render("Not signed in"))
	}
	b.WriteString("\n\n")

	prefs := m.user.Preferences()
	b.WriteString(t.Title.Render("Preferences"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  [m] Measurement style  %s\n", t.Good.Render(string(prefs.MeasurementStyle))))
	b.WriteString(fmt.Sprintf("  [t] Theme              %s\n", t.Good.Render(string(prefs.Theme))))
	b.WriteString(fmt.Sprintf("  [n] Notifications      %s\n", onOff(t, prefs.Notifications)))
	b.WriteString(fmt.Sprintf("  [a] Auto-save recipes  %s\n", onOff(t, prefs.AutoSaveRecipes)))
	b.WriteString(fmt.Sprintf("  [+/-] Default servings %s\n", t.Good.Render(fmt.Sprintf("%d", prefs.DefaultServings))))

	return b.String()
}

func onOff(t *styles.Theme, v bool) string {
	if v {
		return t.Good.Render("on")
	}
	return t.Muted.Render("off")
}
