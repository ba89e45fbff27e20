// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cache

import (
	"context"
	"strings"

	"github.com/leptinchef/leptinchef-tui/internal/model"
	"github.com/leptinchef/leptinchef-tui/internal/util"
)

// =============================================================================
// RECIPE READS
// =============================================================================

// Recipes returns a page of recipes, served from cache while fresh.
func (c *Client) Recipes(ctx context.Context, filter model.RecipeFilter) (model.PaginatedResult[model.Recipe], error) {
	key := Key{Entity: EntityRecipes, Query: QueryList, Param: encodeRecipeFilter(filter)}
	return readThrough(ctx, c, key, StaleRecipesList, func(ctx context.Context) (model.PaginatedResult[model.Recipe], error) {
		return c.services.Recipes.ListRecipes(ctx, filter)
	})
}

// Recipe returns one recipe. An empty id is a disabled read and resolves
// to nil without touching the backend.
func (c *Client) Recipe(ctx context.Context, id string) (*model.Recipe, error) {
	if id == "" {
		return nil, nil
	}
	key := Key{Entity: EntityRecipes, Query: QueryDetail, Param: id}
	return readThrough(ctx, c, key, StaleRecipeDetail, func(ctx context.Context) (*model.Recipe, error) {
		return c.services.Recipes.GetRecipe(ctx, id)
	})
}

// SearchRecipes searches recipes. Queries shorter than MinSearchLength are
// disabled and resolve to an empty result.
func (c *Client) SearchRecipes(ctx context.Context, query string) ([]model.Recipe, error) {
	query = strings.TrimSpace(query)
	if util.RuneLen(query) < MinSearchLength {
		return []model.Recipe{}, nil
	}
	key := Key{Entity: EntityRecipes, Query: QuerySearch, Param: strings.ToLower(query)}
	return readThrough(ctx, c, key, StaleRecipeSearch, func(ctx context.Context) ([]model.Recipe, error) {
		return c.services.Recipes.SearchRecipes(ctx, query)
	})
}

// PopularRecipes returns the most-used recipes.
func (c *Client) PopularRecipes(ctx context.Context, limit int) ([]model.Recipe, error) {
	key := Key{Entity: EntityRecipes, Query: QueryPopular, Param: encodeLimit(limit)}
	return readThrough(ctx, c, key, StaleRecipePopular, func(ctx context.Context) ([]model.Recipe, error) {
		return c.services.Recipes.PopularRecipes(ctx, limit)
	})
}

// RecentRecipes returns the newest recipes.
func (c *Client) RecentRecipes(ctx context.Context, limit int) ([]model.Recipe, error) {
	key := Key{Entity: EntityRecipes, Query: QueryRecent, Param: encodeLimit(limit)}
	return readThrough(ctx, c, key, StaleRecipeRecent, func(ctx context.Context) ([]model.Recipe, error) {
		return c.services.Recipes.RecentRecipes(ctx, limit)
	})
}

// =============================================================================
// INVENTORY READS
// =============================================================================

// Items returns a page of inventory items.
func (c *Client) Items(ctx context.Context, filter model.InventoryFilter) (model.PaginatedResult[model.InventoryItem], error) {
	key := Key{Entity: EntityInventory, Query: QueryList, Param: encodeInventoryFilter(filter)}
	return readThrough(ctx, c, key, StaleInventoryList, func(ctx context.Context) (model.PaginatedResult[model.InventoryItem], error) {
		return c.services.Inventory.ListItems(ctx, filter)
	})
}

// Item returns one inventory item. An empty id is a disabled read.
func (c *Client) Item(ctx context.Context, id string) (*model.InventoryItem, error) {
	if id == "" {
		return nil, nil
	}
	key := Key{Entity: EntityInventory, Query: QueryDetail, Param: id}
	return readThrough(ctx, c, key, StaleInventoryDetail, func(ctx context.Context) (*model.InventoryItem, error) {
		return c.services.Inventory.GetItem(ctx, id)
	})
}

// ExpiringItems returns items expiring within the window.
func (c *Client) ExpiringItems(ctx context.Context, withinDays int) ([]model.InventoryItem, error) {
	key := Key{Entity: EntityInventory, Query: QueryExpiring, Param: encodeDays(withinDays)}
	return readThrough(ctx, c, key, StaleExpiring, func(ctx context.Context) ([]model.InventoryItem, error) {
		return c.services.Inventory.ExpiringItems(ctx, withinDays)
	})
}

// =============================================================================
// CONVERSATION READS
// =============================================================================

// Conversations returns a page of conversation summaries.
func (c *Client) Conversations(ctx context.Context, filter model.ConversationFilter) (model.PaginatedResult[model.Conversation], error) {
	key := Key{Entity: EntityConversations, Query: QueryList, Param: encodeConversationFilter(filter)}
	return readThrough(ctx, c, key, StaleConversationsList, func(ctx context.Context) (model.PaginatedResult[model.Conversation], error) {
		return c.services.Conversations.ListConversations(ctx, filter)
	})
}

// Conversation returns one conversation with its transcript. An empty id
// is a disabled read.
func (c *Client) Conversation(ctx context.Context, id string) (*model.Conversation, error) {
	if id == "" {
		return nil, nil
	}
	key := Key{Entity: EntityConversations, Query: QueryDetail, Param: id}
	return readThrough(ctx, c, key, StaleConversationDetail, func(ctx context.Context) (*model.Conversation, error) {
		return c.services.Conversations.GetConversation(ctx, id)
	})
}

// SearchConversations searches conversations by title and summary; the
// same minimum-length rule as recipe search applies.
func (c *Client) SearchConversations(ctx context.Context, query string) ([]model.Conversation, error) {
	query = strings.TrimSpace(query)
	if util.RuneLen(query) < MinSearchLength {
		return []model.Conversation{}, nil
	}
	key := Key{Entity: EntityConversations, Query: QuerySearch, Param: strings.ToLower(query)}
	return readThrough(ctx, c, key, StaleConversationSearch, func(ctx context.Context) ([]model.Conversation, error) {
		return c.services.Conversations.SearchConversations(ctx, query)
	})
}

// Messages returns the transcript for a conversation. An empty id is a
// disabled read.
func (c *Client) Messages(ctx context.Context, conversationID string) ([]model.Message, error) {
	if conversationID == "" {
		return []model.Message{}, nil
	}
	key := Key{Entity: EntityConversations, Query: QueryMessages, Param: conversationID}
	return readThrough(ctx, c, key, StaleMessages, func(ctx context.Context) ([]model.Message, error) {
		return c.services.Conversations.Messages(ctx, conversationID)
	})
}
