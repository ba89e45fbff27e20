// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/leptinchef/leptinchef-tui/internal/model"
	"github.com/leptinchef/leptinchef-tui/internal/store"
	"github.com/leptinchef/leptinchef-tui/internal/ui/styles"
)

// chatModel is the conversation page: a transcript viewport over the chat
// container plus an input line. Assistant messages render through glamour
// when a renderer is available.
type chatModel struct {
	theme *styles.Theme
	chat  *store.ChatStore

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	width  int
	height int
	ready  bool
}

func newChatModel(theme *styles.Theme, chat *store.ChatStore) chatModel {
	input := textinput.New()
	input.Placeholder = "Ask the chef anything..."
	input.Prompt = theme.InputPrompt.Render("> ")
	input.CharLimit = 2000

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	// Markdown rendering is best effort. A nil renderer falls back to
	// plain text.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer = nil
	}

	return chatModel{
		theme:    theme,
		chat:     chat,
		input:    input,
		spinner:  sp,
		renderer: renderer,
	}
}

func (m chatModel) update(msg tea.Msg) (chatModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case transcriptMsg:
		m.refreshTranscript()
		return m, nil
	case errMsg:
		// The chat container carries the error; just repaint.
		m.refreshTranscript()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		if msg.String() == "enter" {
			m.refreshTranscript()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// takeDraft returns the input value and clears it. Empty or whitespace-only
// drafts return "".
func (m *chatModel) takeDraft() string {
	content := strings.TrimSpace(m.input.Value())
	if content == "" {
		return ""
	}
	m.input.Reset()
	return content
}

func (m *chatModel) resize(width, height int) {
	m.width = width
	m.height = height
	vpHeight := height - 4 // input line, error line, padding
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.input.Width = width - 4
	m.refreshTranscript()
}

// refreshTranscript re-renders the chat container into the viewport and
// scrolls to the bottom.
func (m *chatModel) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

func (m *chatModel) renderMessages() string {
	msgs := m.chat.Messages()
	if len(msgs) == 0 {
		return m.theme.Muted.Render("No messages yet. Ask about a recipe, your inventory, or dinner ideas.")
	}

	bubbleWidth := m.width - 6
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.theme.Subtitle.Render(msg.Role.DisplayName()))
		b.WriteString("\n")

		content := msg.Content
		if msg.Role == model.RoleAssistant && m.renderer != nil {
			if rendered, err := m.renderer.Render(content); err == nil {
				content = strings.TrimSpace(rendered)
			}
		}

		style := m.theme.UserBubble
		if msg.Role == model.RoleAssistant {
			style = m.theme.AssistantBubble
		}
		b.WriteString(style.MaxWidth(bubbleWidth).Render(content))
		b.WriteString("\n")
	}
	return b.String()
}

func (m chatModel) view() string {
	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if errText := m.chat.Error(); errText != "" {
		b.WriteString(m.theme.ChatError.Render(errText))
		b.WriteString("\n")
	}

	if m.chat.IsLoading() {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Muted.Render(" The chef is thinking..."))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	return b.String()
}
