// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend defines the collaborator interfaces the client talks to,
// plus a local mock implementation backed by SQLite.
package backend

import (
	"context"
	"errors"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDatabaseError wraps storage-level failures in the mock.
	ErrDatabaseError = errors.New("database error")
)

// =============================================================================
// SERVICE INTERFACES
// =============================================================================

// RecipeService is the recipe surface of the backend collaborator.
type RecipeService interface {
	// ListRecipes returns a page of recipes matching the filter.
	ListRecipes(ctx context.Context, filter model.RecipeFilter) (model.PaginatedResult[model.Recipe], error)

	// GetRecipe returns one recipe. ErrNotFound for unknown ids.
	GetRecipe(ctx context.Context, id string) (*model.Recipe, error)

	// CreateRecipe stores a new recipe; the backend assigns the id and
	// timestamps, and usage count starts at zero.
	CreateRecipe(ctx context.Context, in model.RecipeInput) (*model.Recipe, error)

	// UpdateRecipe applies the patch. ErrNotFound for unknown ids.
	UpdateRecipe(ctx context.Context, id string, patch model.RecipePatch) (*model.Recipe, error)

	// DeleteRecipe removes the recipe. ErrNotFound for unknown ids.
	DeleteRecipe(ctx context.Context, id string) error

	// SearchRecipes matches the query against titles, descriptions, and tags.
	SearchRecipes(ctx context.Context, query string) ([]model.Recipe, error)

	// PopularRecipes returns the most-used recipes, busiest first.
	PopularRecipes(ctx context.Context, limit int) ([]model.Recipe, error)

	// RecentRecipes returns the most recently created recipes, newest first.
	RecentRecipes(ctx context.Context, limit int) ([]model.Recipe, error)
}

// InventoryService is the kitchen-inventory surface of the backend.
type InventoryService interface {
	// ListItems returns a page of inventory items matching the filter.
	ListItems(ctx context.Context, filter model.InventoryFilter) (model.PaginatedResult[model.InventoryItem], error)

	// GetItem returns one item. ErrNotFound for unknown ids.
	GetItem(ctx context.Context, id string) (*model.InventoryItem, error)

	// CreateItem stores a new item with backend-assigned id and timestamps.
	CreateItem(ctx context.Context, in model.InventoryItemInput) (*model.InventoryItem, error)

	// UpdateItem applies the patch. ErrNotFound for unknown ids.
	UpdateItem(ctx context.Context, id string, patch model.InventoryItemPatch) (*model.InventoryItem, error)

	// DeleteItem removes the item. ErrNotFound for unknown ids.
	DeleteItem(ctx context.Context, id string) error

	// ExpiringItems returns items whose expiry date falls within the window,
	// soonest first. Items without an expiry date are never included.
	ExpiringItems(ctx context.Context, withinDays int) ([]model.InventoryItem, error)
}

// ConversationService is the chat-history surface of the backend.
type ConversationService interface {
	// ListConversations returns a page of conversations, most recently
	// updated first. Transcripts are not loaded for list reads.
	ListConversations(ctx context.Context, filter model.ConversationFilter) (model.PaginatedResult[model.Conversation], error)

	// GetConversation returns one conversation with its full transcript.
	GetConversation(ctx context.Context, id string) (*model.Conversation, error)

	// CreateConversation stores a new conversation, including any initial
	// messages carried by the input.
	CreateConversation(ctx context.Context, in model.ConversationInput) (*model.Conversation, error)

	// UpdateConversation applies the patch. ErrNotFound for unknown ids.
	UpdateConversation(ctx context.Context, id string, patch model.ConversationPatch) (*model.Conversation, error)

	// DeleteConversation removes the conversation and its messages.
	DeleteConversation(ctx context.Context, id string) error

	// SearchConversations matches the query against titles and summaries.
	SearchConversations(ctx context.Context, query string) ([]model.Conversation, error)

	// Messages returns the transcript in chronological order.
	Messages(ctx context.Context, conversationID string) ([]model.Message, error)

	// SendMessage stores the user's message and returns it. The assistant's
	// reply is stored alongside it and shows up in subsequent Messages reads.
	SendMessage(ctx context.Context, conversationID string, in model.MessageInput) (*model.Message, error)
}

// Services bundles the three backend surfaces for wiring convenience.
type Services struct {
	Recipes       RecipeService
	Inventory     InventoryService
	Conversations ConversationService
}
