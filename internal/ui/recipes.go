// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leptinchef/leptinchef-tui/internal/model"
	"github.com/leptinchef/leptinchef-tui/internal/ui/styles"
)

// recipesModel is the recipe browser: a paginated list, a search mode, and
// a detail view. Intent flags (wantDetail, wantSearch, wantDelete,
// wantPage) are drained by the root model, which owns the cache commands.
type recipesModel struct {
	theme *styles.Theme

	recipes []model.Recipe
	total   int
	page    int
	hasNext bool
	hasPrev bool
	cursor  int

	detail *model.Recipe

	searching     bool
	searchInput   textinput.Model
	searchResults []model.Recipe
	searchQuery   string

	loadErr string

	wantDetail string
	wantSearch string
	wantDelete string
	wantPage   int

	width  int
	height int
}

func newRecipesModel(theme *styles.Theme) recipesModel {
	search := textinput.New()
	search.Placeholder = "Search recipes..."
	search.Prompt = "/ "
	search.CharLimit = 100

	return recipesModel{
		theme:       theme,
		page:        1,
		searchInput: search,
	}
}

func (m recipesModel) update(msg tea.Msg) (recipesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case recipesLoadedMsg:
		m.setResult(msg.result)
		return m, nil

	case recipeDetailMsg:
		m.detail = msg.recipe
		return m, nil

	case searchResultsMsg:
		if msg.query == strings.TrimSpace(m.searchInput.Value()) {
			m.searchResults = msg.recipes
			m.searchQuery = msg.query
		}
		return m, nil

	case errMsg:
		m.loadErr = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m recipesModel) handleKey(msg tea.KeyMsg) (recipesModel, tea.Cmd) {
	key := msg.String()

	if m.searching {
		switch key {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchResults = nil
			m.searchQuery = ""
			return m, nil
		case "enter":
			m.wantSearch = strings.TrimSpace(m.searchInput.Value())
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	if m.detail != nil {
		switch key {
		case "esc", "backspace":
			m.detail = nil
		}
		return m, nil
	}

	items := m.visible()
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(items) {
			m.wantDetail = items[m.cursor].ID
		}
	case "d":
		if m.cursor < len(items) {
			m.wantDelete = items[m.cursor].ID
		}
	case "/":
		m.searching = true
		m.searchInput.Reset()
		m.searchInput.Focus()
	case "n", "right":
		if m.hasNext {
			m.wantPage = m.page + 1
		}
	case "p", "left":
		if m.hasPrev {
			m.wantPage = m.page - 1
		}
	}
	return m, nil
}

// visible returns the list currently shown: search results when a search
// is live, the page otherwise.
func (m recipesModel) visible() []model.Recipe {
	if m.searchQuery != "" {
		return m.searchResults
	}
	return m.recipes
}

func (m *recipesModel) setResult(result model.PaginatedResult[model.Recipe]) {
	m.recipes = result.Items
	m.total = result.Total
	m.page = result.Page
	m.hasNext = result.HasNext
	m.hasPrev = result.HasPrev
	m.loadErr = ""
	if m.cursor >= len(m.recipes) {
		m.cursor = 0
	}
}

func (m *recipesModel) takeWantDetail() string {
	id := m.wantDetail
	m.wantDetail = ""
	return id
}

func (m *recipesModel) takeWantSearch() string {
	q := m.wantSearch
	m.wantSearch = ""
	return q
}

func (m *recipesModel) takeWantDelete() string {
	id := m.wantDelete
	m.wantDelete = ""
	return id
}

func (m *recipesModel) takeWantPage() int {
	p := m.wantPage
	m.wantPage = 0
	return p
}

func (m *recipesModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.searchInput.Width = width - 4
}

func (m recipesModel) view() string {
	if m.detail != nil {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m recipesModel) viewList() string {
	t := m.theme
	var b strings.Builder

	if m.searchQuery != "" {
		b.WriteString(t.Title.Render(fmt.Sprintf("Search: %q", m.searchQuery)))
	} else {
		b.WriteString(t.Title.Render(fmt.Sprintf("Recipes (page %d, %d total)", m.page, m.total)))
	}
	b.WriteString("\n\n")

	if m.loadErr != "" {
		b.WriteString(t.Danger.Render("Could not load recipes: " + m.loadErr))
		b.WriteString("\n\n")
	}

	items := m.visible()
	if len(items) == 0 {
		b.WriteString(t.Muted.Render("No recipes found."))
		b.WriteString("\n")
	}
	for i, r := range items {
		meta := fmt.Sprintf("%dm · %s · %d tags", r.TotalTime(), r.Difficulty, len(r.Tags))
		line := r.Title + " " + t.ListMeta.Render(meta)
		if i == m.cursor {
			b.WriteString(t.ListSelected.Render(line))
		} else {
			b.WriteString(t.ListItem.Render(line))
		}
		b.WriteString("\n")
	}

	if m.searching {
		b.WriteString("\n")
		b.WriteString(m.searchInput.View())
	}

	return b.String()
}

func (m recipesModel) viewDetail() string {
	t := m.theme
	r := m.detail
	var b strings.Builder

	b.WriteString(t.Title.Render(r.Title))
	b.WriteString("\n")
	if r.Description != "" {
		b.WriteString(t.Subtitle.Render(r.Description))
		b.WriteString("\n")
	}
	b.WriteString(t.ListMeta.Render(fmt.Sprintf(
		"serves %d · prep %dm · cook %dm · %s · cooked %d times",
		r.Servings, r.PrepTime, r.CookTime, r.Difficulty, r.UsageCount)))
	b.WriteString("\n\n")

	b.WriteString(t.Title.Render("Ingredients"))
	b.WriteString("\n")
	for _, ing := range r.Ingredients {
		line := fmt.Sprintf("  %.4g %s %s", ing.Amount, ing.Unit, ing.Name)
		if ing.Notes != "" {
			line += " " + t.Muted.Render("("+ing.Notes+")")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(t.Title.Render("Method"))
	b.WriteString("\n")
	for i, step := range r.Method {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}

	if len(r.Tags) > 0 {
		b.WriteString("\n")
		b.WriteString(t.Muted.Render("tags: " + strings.Join(r.Tags, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Muted.Render("esc to go back"))
	return b.String()
}
