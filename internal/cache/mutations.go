// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cache

import (
	"context"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// Mutations share one shape: call the backend with the write retry budget,
// and on success invalidate the entity's list-style keys, seed the detail
// key with the returned record, and raise a success toast. On failure the
// cache is left untouched and an error toast carries the collaborator's
// message (or the fixed fallback).

// =============================================================================
// RECIPE MUTATIONS
// =============================================================================

// CreateRecipe creates a recipe.
func (c *Client) CreateRecipe(ctx context.Context, in model.RecipeInput) (*model.Recipe, error) {
	r, err := withRetry(ctx, c.writeRetries, c.backoffBase, func(ctx context.Context) (*model.Recipe, error) {
		return c.services.Recipes.CreateRecipe(ctx, in)
	})
	if err != nil {
		c.notifyError(err, "Failed to create recipe")
		return nil, err
	}

	c.invalidateRecipeLists()
	c.entries.set(Key{Entity: EntityRecipes, Query: QueryDetail, Param: r.ID}, r, c.now())
	c.notifySuccess("Recipe created")
	return r, nil
}

// UpdateRecipe updates a recipe.
func (c *Client) UpdateRecipe(ctx context.Context, id string, patch model.RecipePatch) (*model.Recipe, error) {
	r, err := withRetry(ctx, c.writeRetries, c.backoffBase, func(ctx context.Context) (*model.Recipe, error) {
		return c.services.Recipes.UpdateRecipe(ctx, id, patch)
	})
	if err != nil {
		c.notifyError(err, "Failed to update recipe")
		return nil, err
	}

	c.invalidateRecipeLists()
	c.entries.set(Key{Entity: EntityRecipes, Query: QueryDetail, Param: r.ID}, r, c.now())
	c.notifySuccess("Recipe updated")
	return r, nil
}

// DeleteRecipe deletes a recipe and drops its detail entry.
func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	_, err := withRetry(ctx, c.writeRetries, c.backoffBase, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.services.Recipes.DeleteRecipe(ctx, id)
	})
	if err != nil {
		c.notifyError(err, "Failed to delete recipe")
		return err
	}

	c.invalidateRecipeLists()
	c.entries.remove(Key{Entity: EntityRecipes, Query: QueryDetail, Param: id})
	c.notifySuccess("Recipe deleted")
	return nil
}

func (c *Client) invalidateRecipeLists() {
	c.entries.invalidate(EntityRecipes, QueryList, QuerySearch, QueryPopular, QueryRecent)
}

// =============================================================================
// INVENTORY MUTATIONS
// =============================================================================

// CreateItem adds an inventory item.
func (c *Client) CreateItem(ctx context.Context, in model.InventoryItemInput) (*model.InventoryItem, error) {
	item, err := withRetry(ctx, c.writeRetries, c.backoffBase, func(ctx context.Context) (*model.InventoryItem, error) {
		return c.services.Inventory.CreateItem(ctx, in)
	})
	if err != nil {
		c.notifyError(err, "Failed to add item")
		return nil, err
	}

	c.invalidateInventoryLists()
	c.entries.set(Key{Entity: EntityInventory, Query: QueryDetail, Param: item.ID}, item, c.now())
	c.notifySuccess("Item added")
	return item, nil
}

// UpdateItem updates an inventory item.
func (c *Client) UpdateItem(ctx context.Context, id string, patch model.InventoryItemPatch) (*model.InventoryItem, error) {
	item, err := withRetry(ctx, c.writeRetries, c.backoffBase, func(ctx context.Context) (*model.InventoryItem, error) {
		return c.services.Inventory.UpdateItem(ctx, id, patch)
	})
	if err != nil {
		c.notifyError(err, "Failed to update item")
		return nil, err
	}

	c.invalidateInventoryLists()
	c.entries.set(Key{Entity: EntityInventory, Query: QueryDetail, Param: item.ID}, item, c.now())
	c.notifySuccess("Item updated")
	return item, nil
}

// DeleteItem deletes an inventory item and drops its detail entry.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	_, err := withRetry(ctx, c.writeRetries, c.backoffBase, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.services.Inventory.DeleteItem(ctx, id)
	})
	if err != nil {
		c.notifyError(err, "Failed to delete item")
		return err
	}

	c.invalidateInventoryLists()
	c.entries.remove(Key{Entity: EntityInventory, Query: QueryDetail, Param: id})
	c.notifySuccess("Item deleted")
	return nil
}

func (c *Client) invalidateInventoryLists() {
	c.entries.invalidate(EntityInventory, QueryList, QueryExpiring)
}

// =============================================================================
// CONVERSATION MUTATIONS
// =============================================================================

// CreateConversation creates a conversation and makes it the chat
// container's current conversation, replacing the open transcript.
func (c *Client) CreateConversation(ctx context.Context, in model.ConversationInput) (*model.Conversation, error) {
	conv, err := withRetry(ctx, c.writeRetries, c.backoffBase, func(ctx context.Context) (*model.Conversation, error) {
		return c.services.Conversations.CreateConversation(ctx, in)
	})
	if err != nil {
		c.notifyError(err, "Failed to create conversation")
		return nil, err
	}

	c.entries.invalidate(EntityConversations, QueryList, QuerySearch)
	c.entries.set(Key{Entity: EntityConversations, Query: QueryDetail, Param: conv.ID}, conv, c.now())

	if c.chat != nil {
		c.chat.SetCurrentConversation(conv.ID)
		c.chat.ClearMessages()
		c.chat.AddMessages(conv.Messages)
	}

	c.notifySuccess("Conversation created")
	return conv, nil
}

// UpdateConversation updates a conversation's title or summary.
func (c *Client) UpdateConversation(ctx context.Context, id string, patch model.ConversationPatch) (*model.Conversation, error) {
	conv, err := withRetry(ctx, c.writeRetries, c.backoffBase, func(ctx context.Context) (*model.Conversation, error) {
		return c.services.Conversations.UpdateConversation(ctx, id, patch)
	})
	if err != nil {
		c.notifyError(err, "Failed to update conversation")
		return nil, err
	}

	c.entries.invalidate(EntityConversations, QueryList, QuerySearch)
	c.entries.set(Key{Entity: EntityConversations, Query: QueryDetail, Param: conv.ID}, conv, c.now())
	c.notifySuccess("Conversation updated")
	return conv, nil
}

// DeleteConversation deletes a conversation. If it is the chat container's
// open conversation, the transcript and current id are cleared too.
func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	_, err := withRetry(ctx, c.writeRetries, c.backoffBase, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.services.Conversations.DeleteConversation(ctx, id)
	})
	if err != nil {
		c.notifyError(err, "Failed to delete conversation")
		return err
	}

	c.entries.invalidate(EntityConversations, QueryList, QuerySearch)
	c.entries.remove(Key{Entity: EntityConversations, Query: QueryDetail, Param: id})
	c.entries.remove(Key{Entity: EntityConversations, Query: QueryMessages, Param: id})

	if c.chat != nil && c.chat.CurrentConversationID() == id {
		c.chat.ClearMessages()
		c.chat.SetCurrentConversation("")
	}

	c.notifySuccess("Conversation deleted")
	return nil
}

// SendMessage sends a chat message. The chat container's loading flag
// brackets the call; on success the stored message is appended to the
// transcript and the messages key is dropped so the assistant's reply is
// picked up by the next read. Failures land in the chat container's error
// state rather than a toast.
func (c *Client) SendMessage(ctx context.Context, conversationID string, in model.MessageInput) (*model.Message, error) {
	if c.chat != nil {
		c.chat.SetLoading(true)
		defer c.chat.SetLoading(false)
	}

	msg, err := withRetry(ctx, c.writeRetries, c.backoffBase, func(ctx context.Context) (*model.Message, error) {
		return c.services.Conversations.SendMessage(ctx, conversationID, in)
	})
	if err != nil {
		if c.chat != nil {
			message := "Failed to send message"
			if err.Error() != "" {
				message = err.Error()
			}
			c.chat.SetError(message)
		}
		return nil, err
	}

	if c.chat != nil {
		c.chat.AddMessages([]model.Message{*msg})
	}
	c.entries.remove(Key{Entity: EntityConversations, Query: QueryMessages, Param: conversationID})
	c.entries.invalidate(EntityConversations, QueryList)

	return msg, nil
}
