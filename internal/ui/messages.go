// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leptinchef/leptinchef-tui/internal/model"
	"github.com/leptinchef/leptinchef-tui/internal/util"
)

// =============================================================================
// MESSAGES
// =============================================================================

// RepaintMsg forces a re-render without changing state. Sent from outside
// the program loop (notification auto-dismiss, background pollers).
type RepaintMsg struct{}

// ThemeChangedMsg carries a new theme preference, typically from the config
// watcher.
type ThemeChangedMsg struct {
	Theme model.Theme
}

type recipesLoadedMsg struct {
	result model.PaginatedResult[model.Recipe]
}

type recipeDetailMsg struct {
	recipe *model.Recipe
}

type searchResultsMsg struct {
	query   string
	recipes []model.Recipe
}

type popularLoadedMsg struct {
	recipes []model.Recipe
}

type inventoryLoadedMsg struct {
	result model.PaginatedResult[model.InventoryItem]
}

type expiringLoadedMsg struct {
	items []model.InventoryItem
}

type conversationsLoadedMsg struct {
	result model.PaginatedResult[model.Conversation]
}

type transcriptMsg struct {
	conversationID string
	messages       []model.Message
}

type mutationDoneMsg struct{}

type errMsg struct {
	err error
}

// =============================================================================
// COMMANDS
// =============================================================================

// Commands run cache reads and mutations off the update loop. Read errors
// surface as errMsg for the page to display; mutation outcomes arrive via
// the notification queue, so a mutationDoneMsg only triggers reloads.

func (a *App) loadRecipesCmd(filter model.RecipeFilter) tea.Cmd {
	return func() tea.Msg {
		result, err := a.client.Recipes(context.Background(), filter)
		if err != nil {
			return errMsg{err}
		}
		return recipesLoadedMsg{result}
	}
}

func (a *App) loadRecipeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		r, err := a.client.Recipe(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return recipeDetailMsg{r}
	}
}

func (a *App) searchRecipesCmd(query string) tea.Cmd {
	return func() tea.Msg {
		recipes, err := a.client.SearchRecipes(context.Background(), query)
		if err != nil {
			return errMsg{err}
		}
		return searchResultsMsg{query: query, recipes: recipes}
	}
}

func (a *App) loadPopularCmd(limit int) tea.Cmd {
	return func() tea.Msg {
		recipes, err := a.client.PopularRecipes(context.Background(), limit)
		if err != nil {
			return errMsg{err}
		}
		return popularLoadedMsg{recipes}
	}
}

func (a *App) loadInventoryCmd(filter model.InventoryFilter) tea.Cmd {
	return func() tea.Msg {
		result, err := a.client.Items(context.Background(), filter)
		if err != nil {
			return errMsg{err}
		}
		return inventoryLoadedMsg{result}
	}
}

func (a *App) loadExpiringCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := a.client.ExpiringItems(context.Background(), a.expiringDays)
		if err != nil {
			return errMsg{err}
		}
		return expiringLoadedMsg{items}
	}
}

func (a *App) loadConversationsCmd(filter model.ConversationFilter) tea.Cmd {
	return func() tea.Msg {
		result, err := a.client.Conversations(context.Background(), filter)
		if err != nil {
			return errMsg{err}
		}
		return conversationsLoadedMsg{result}
	}
}

func (a *App) loadTranscriptCmd(conversationID string) tea.Cmd {
	return func() tea.Msg {
		msgs, err := a.client.Messages(context.Background(), conversationID)
		if err != nil {
			return errMsg{err}
		}
		return transcriptMsg{conversationID: conversationID, messages: msgs}
	}
}

// sendMessageCmd sends a chat message, creating a conversation first when
// none is open. The follow-up transcript read picks up the assistant reply.
func (a *App) sendMessageCmd(content string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		convID := a.chat.CurrentConversationID()
		if convID == "" {
			conv, err := a.client.CreateConversation(ctx, model.ConversationInput{
				Title: conversationTitle(content),
			})
			if err != nil {
				return errMsg{err}
			}
			convID = conv.ID
		}

		if _, err := a.client.SendMessage(ctx, convID, model.MessageInput{
			Role:    model.RoleUser,
			Content: content,
		}); err != nil {
			return errMsg{err}
		}

		msgs, err := a.client.Messages(ctx, convID)
		if err != nil {
			return errMsg{err}
		}
		return transcriptMsg{conversationID: convID, messages: msgs}
	}
}

func (a *App) deleteRecipeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.client.DeleteRecipe(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return mutationDoneMsg{}
	}
}

func (a *App) deleteItemCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.client.DeleteItem(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return mutationDoneMsg{}
	}
}

// conversationTitle derives a short title from the first message.
func conversationTitle(content string) string {
	content = util.TruncateRunes(util.Flatten(strings.TrimSpace(content)), 43)
	if content == "" {
		content = "New conversation"
	}
	return content
}
