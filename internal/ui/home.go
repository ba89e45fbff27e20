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

// homeModel is the landing page: popular recipes and expiring inventory
// at a glance.
type homeModel struct {
	theme *styles.Theme

	popular  []model.Recipe
	expiring []model.InventoryItem
	loadErr  string

	width  int
	height int
}

func newHomeModel(theme *styles.Theme) homeModel {
	return homeModel{theme: theme}
}

func (m homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case popularLoadedMsg:
		m.popular = msg.recipes
		m.loadErr = ""
	case expiringLoadedMsg:
		m.expiring = msg.items
	case errMsg:
		m.loadErr = msg.err.Error()
	}
	return m, nil
}

func (m *homeModel) resize(width, height int) {
	m.width = width
	m.height = height
}

func (m homeModel) view() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("Welcome to Leptin Chef"))
	b.WriteString("\n")
	b.WriteString(t.Subtitle.Render("Your kitchen, your inventory, your chef."))
	b.WriteString("\n\n")

	if m.loadErr != "" {
		b.WriteString(t.Danger.Render("Could not load data: " + m.loadErr))
		b.WriteString("\n\n")
	}

	b.WriteString(t.Title.Render("Popular recipes"))
	b.WriteString("\n")
	if len(m.popular) == 0 {
		b.WriteString(t.Muted.Render("  Nothing here yet."))
		b.WriteString("\n")
	}
	for _, r := range m.popular {
		line := fmt.Sprintf("  %s %s", r.Title,
			t.ListMeta.Render(fmt.Sprintf("(%dm, cooked %d times)", r.TotalTime(), r.UsageCount)))
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(t.Title.Render("Expiring soon"))
	b.WriteString("\n")
	if len(m.expiring) == 0 {
		b.WriteString(t.Good.Render("  Nothing is about to expire."))
		b.WriteString("\n")
	}
	now := time.Now()
	for _, item := range m.expiring {
		days := 0
		if item.ExpiryDate != nil {
			days = int(item.ExpiryDate.Sub(now).Hours() / 24)
		}
		label := fmt.Sprintf("  %s %s", item.Name,
			t.ListMeta.Render(fmt.Sprintf("%.0f %s", item.Quantity, item.Unit)))
		switch {
		case days <= 1:
			label += " " + t.Danger.Render("expires today or tomorrow")
		default:
			label += " " + t.Warning.Render(fmt.Sprintf("expires in %d days", days))
		}
		b.WriteString(label)
		b.WriteString("\n")
	}

	return b.String()
}
