// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components holds small stateless render helpers shared by the
// page models.
package components

import (
	"fmt"
	"strings"

	"github.com/leptinchef/leptinchef-tui/internal/ui/styles"
)

// sidebarWidth is the expanded sidebar width in cells.
const sidebarWidth = 18

// Sidebar renders the navigation rail. Collapsed mode shows only the
// page numbers.
func Sidebar(t *styles.Theme, items []string, active int, collapsed bool, height int) string {
	var b strings.Builder

	b.WriteString(t.Title.Render("leptinchef"))
	b.WriteString("\n\n")

	for i, item := range items {
		label := fmt.Sprintf("%d", i+1)
		if !collapsed {
			label = fmt.Sprintf("%d %s", i+1, item)
		}
		if i == active {
			b.WriteString(t.NavItemActive.Render(label))
		} else {
			b.WriteString(t.NavItem.Render(label))
		}
		b.WriteString("\n")
	}

	width := sidebarWidth
	if collapsed {
		width = 4
	}
	return t.Sidebar.Width(width).Height(height).Render(b.String())
}

// SidebarWidth returns the rendered sidebar width for layout math.
func SidebarWidth(collapsed bool) int {
	if collapsed {
		return 4 + 2 // border + padding
	}
	return sidebarWidth + 2
}
