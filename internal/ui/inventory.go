// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leptinchef/leptinchef-tui/internal/model"
	"github.com/leptinchef/leptinchef-tui/internal/ui/styles"
)

// inventoryModel is the kitchen inventory page: a paginated list with
// expiry highlighting and a summary of items expiring soon.
type inventoryModel struct {
	theme *styles.Theme

	items    []model.InventoryItem
	expiring []model.InventoryItem
	total    int
	page     int
	hasNext  bool
	hasPrev  bool
	cursor   int

	expiringDays int
	loadErr      string

	wantDelete string
	wantPage   int

	width  int
	height int
}

func newInventoryModel(theme *styles.Theme, expiringDays int) inventoryModel {
	return inventoryModel{
		theme:        theme,
		page:         1,
		expiringDays: expiringDays,
	}
}

func (m inventoryModel) update(msg tea.Msg) (inventoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case inventoryLoadedMsg:
		m.setResult(msg.result)
		return m, nil

	case expiringLoadedMsg:
		m.expiring = msg.items
		return m, nil

	case errMsg:
		m.loadErr = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "d":
			if m.cursor < len(m.items) {
				m.wantDelete = m.items[m.cursor].ID
			}
		case "n", "right":
			if m.hasNext {
				m.wantPage = m.page + 1
			}
		case "p", "left":
			if m.hasPrev {
				m.wantPage = m.page - 1
			}
		}
	}
	return m, nil
}

func (m *inventoryModel) setResult(result model.PaginatedResult[model.InventoryItem]) {
	m.items = result.Items
	m.total = result.Total
	m.page = result.Page
	m.hasNext = result.HasNext
	m.hasPrev = result.HasPrev
	m.loadErr = ""
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
}

func (m *inventoryModel) takeWantDelete() string {
	id := m.wantDelete
	m.wantDelete = ""
	return id
}

func (m *inventoryModel) takeWantPage() int {
	p := m.wantPage
	m.wantPage = 0
	return p
}

func (m *inventoryModel) resize(width, height int) {
	m.width = width
	m.height = height
}

func (m inventoryModel) view() string {
	t := m.theme
	now := time.Now()
	var b strings.Builder

	b.WriteString(t.Title.Render(fmt.Sprintf("Inventory (page %d, %d items)", m.page, m.total)))
	b.WriteString("\n\n")

	if m.loadErr != "" {
		b.WriteString(t.Danger.Render("Could not load inventory: " + m.loadErr))
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString(t.Muted.Render("Your kitchen is empty."))
		b.WriteString("\n")
	}
	window := time.Duration(m.expiringDays) * 24 * time.Hour
	for i, item := range m.items {
		meta := fmt.Sprintf("%.4g %s · %s", item.Quantity, item.Unit, item.Category)
		line := item.Name + " " + t.ListMeta.Render(meta)
		switch {
		case item.IsExpired(now):
			line += " " + t.Danger.Render("expired")
		case item.IsExpiringSoon(now, window):
			line += " " + t.Warning.Render("expiring soon")
		}
		if i == m.cursor {
			b.WriteString(t.ListSelected.Render(line))
		} else {
			b.WriteString(t.ListItem.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Title.Render(fmt.Sprintf("Expiring within %d days", m.expiringDays)))
	b.WriteString("\n")
	if len(m.expiring) == 0 {
		b.WriteString(t.Good.Render("  Nothing is about to expire."))
		b.WriteString("\n")
	}
	for _, item := range m.expiring {
		when := ""
		if item.ExpiryDate != nil {
			when = item.ExpiryDate.Format("Jan 2")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", item.Name, t.Warning.Render(when)))
	}

	return b.String()
}
