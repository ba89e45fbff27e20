// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leptinchef/leptinchef-tui/internal/model"
	"github.com/leptinchef/leptinchef-tui/internal/store"
	"github.com/leptinchef/leptinchef-tui/internal/ui/styles"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testTheme() *styles.Theme {
	return styles.New(model.ThemeDark)
}

func sampleRecipes(n int) []model.Recipe {
	out := make([]model.Recipe, n)
	for i := range out {
		out[i] = model.Recipe{ID: string(rune('a' + i)), Title: "Recipe"}
	}
	return out
}

func TestRecipesCursorAndIntents(t *testing.T) {
	m := newRecipesModel(testTheme())
	m.setResult(model.PaginatedResult[model.Recipe]{
		Items: sampleRecipes(3), Total: 3, Page: 1,
	})

	m, _ = m.update(key("j"))
	m, _ = m.update(key("j"))
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}
	m, _ = m.update(key("j"))
	if m.cursor != 2 {
		t.Error("cursor must not run past the end of the list")
	}

	m, _ = m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.takeWantDetail(); got != "c" {
		t.Errorf("wantDetail = %q, want c", got)
	}
	if got := m.takeWantDetail(); got != "" {
		t.Errorf("wantDetail must drain after take, got %q", got)
	}

	m, _ = m.update(key("d"))
	if got := m.takeWantDelete(); got != "c" {
		t.Errorf("wantDelete = %q, want c", got)
	}
}

func TestRecipesPaginationIntents(t *testing.T) {
	m := newRecipesModel(testTheme())
	m.setResult(model.PaginatedResult[model.Recipe]{
		Items: sampleRecipes(2), Total: 50, Page: 2, HasNext: true, HasPrev: true,
	})

	m, _ = m.update(key("n"))
	if got := m.takeWantPage(); got != 3 {
		t.Errorf("next page intent = %d, want 3", got)
	}
	m, _ = m.update(key("p"))
	if got := m.takeWantPage(); got != 1 {
		t.Errorf("prev page intent = %d, want 1", got)
	}

	// Without more pages there is nothing to request
	m.setResult(model.PaginatedResult[model.Recipe]{Items: sampleRecipes(2), Total: 2, Page: 1})
	m, _ = m.update(key("n"))
	if got := m.takeWantPage(); got != 0 {
		t.Errorf("page intent on last page = %d, want 0", got)
	}
}

func TestRecipesSearchMode(t *testing.T) {
	m := newRecipesModel(testTheme())
	m, _ = m.update(key("/"))
	if !m.searching {
		t.Fatal("slash must enter search mode")
	}

	for _, r := range "curry" {
		m, _ = m.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.takeWantSearch(); got != "curry" {
		t.Errorf("search intent = %q, want curry", got)
	}

	m, _ = m.update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching {
		t.Error("esc must leave search mode")
	}
}

func TestChatDraft(t *testing.T) {
	m := newChatModel(testTheme(), store.NewChatStore(nil, &model.SequenceGenerator{}))
	m.input.SetValue("  hello chef  ")

	if got := m.takeDraft(); got != "hello chef" {
		t.Errorf("takeDraft = %q, want trimmed content", got)
	}
	if m.input.Value() != "" {
		t.Error("takeDraft must clear the input")
	}
	if got := m.takeDraft(); got != "" {
		t.Errorf("empty draft must yield \"\", got %q", got)
	}
}

func TestProfileToggles(t *testing.T) {
	users := store.NewUserStore(nil)
	m := newProfileModel(testTheme(), users)

	m, _ = m.update(key("m"))
	if got := users.Preferences().MeasurementStyle; got != model.MeasurementUS {
		t.Errorf("measurement style = %q, want us", got)
	}
	if u := users.User(); u == nil || u.MeasurementStyle != model.MeasurementUS {
		t.Error("measurement style must stay in sync with the user")
	}

	m, _ = m.update(key("t"))
	if !m.themeDirty || m.pendingTheme != model.ThemeLight {
		t.Errorf("theme toggle: dirty=%v pending=%q", m.themeDirty, m.pendingTheme)
	}

	m, _ = m.update(key("-"))
	if got := users.Preferences().DefaultServings; got != 1 {
		t.Errorf("servings = %d, want 1", got)
	}
	m, _ = m.update(key("-"))
	if got := users.Preferences().DefaultServings; got != 1 {
		t.Error("servings must not drop below 1")
	}
}

func TestNextThemeCycles(t *testing.T) {
	order := []model.Theme{model.ThemeAuto, model.ThemeLight, model.ThemeDark, model.ThemeAuto}
	for i := 0; i < len(order)-1; i++ {
		if got := nextTheme(order[i]); got != order[i+1] {
			t.Errorf("nextTheme(%q) = %q, want %q", order[i], got, order[i+1])
		}
	}
}

func TestConversationTitle(t *testing.T) {
	if got := conversationTitle("What can I cook tonight?"); got != "What can I cook tonight?" {
		t.Errorf("short title = %q", got)
	}
	long := strings.Repeat("x", 60)
	if got := conversationTitle(long); got != strings.Repeat("x", 40)+"..." {
		t.Errorf("long title = %q", got)
	}
	if got := conversationTitle("   "); got != "New conversation" {
		t.Errorf("blank title = %q", got)
	}
}

func TestHomeViewShowsData(t *testing.T) {
	m := newHomeModel(testTheme())
	m.resize(80, 24)
	m, _ = m.update(popularLoadedMsg{recipes: []model.Recipe{{Title: "Shakshuka", UsageCount: 5}}})

	view := m.view()
	if !strings.Contains(view, "Shakshuka") {
		t.Error("home view must list popular recipes")
	}
	if !strings.Contains(view, "Nothing is about to expire") {
		t.Error("home view must show the empty expiring state")
	}
}
