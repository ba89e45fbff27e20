// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/leptinchef/leptinchef-tui/internal/ui/styles"
	"github.com/leptinchef/leptinchef-tui/internal/util"
)

// Hint is one key binding shown in the status bar.
type Hint struct {
	Key  string
	Desc string
}

// StatusBar renders a single-line bar of key hints, truncated to width.
func StatusBar(t *styles.Theme, width int, hints []Hint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, t.StatusKey.Render(h.Key)+" "+h.Desc)
	}
	line := strings.Join(parts, "  ")
	line = util.TruncateWidth(line, max(width-2, 0))
	return t.StatusBar.Width(width).Render(line)
}
