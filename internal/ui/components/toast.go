// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/leptinchef/leptinchef-tui/internal/store"
	"github.com/leptinchef/leptinchef-tui/internal/ui/styles"
	"github.com/leptinchef/leptinchef-tui/internal/util"
)

// Toasts renders the notification queue, one line per notification, newest
// last. Returns "" when the queue is empty.
func Toasts(t *styles.Theme, width int, notes []store.Notification) string {
	if len(notes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, n := range notes {
		if i > 0 {
			b.WriteString("\n")
		}
		msg := util.TruncateWidth(n.Message, max(width-6, 10))
		switch n.Type {
		case store.NotificationSuccess:
			b.WriteString(t.ToastSuccess.Render("✓ " + msg))
		case store.NotificationError:
			b.WriteString(t.ToastError.Render("✗ " + msg))
		case store.NotificationWarning:
			b.WriteString(t.ToastWarning.Render("! " + msg))
		default:
			b.WriteString(t.ToastInfo.Render("i " + msg))
		}
	}
	return b.String()
}
