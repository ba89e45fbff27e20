// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the domain entities for the leptinchef client.
package model

import "time"

// Input forms carry the client-supplied fields for create operations.
// Server-assigned fields (id, usage count, timestamps) are omitted; the
// backend fills them in on success.

// =============================================================================
// RECIPE INPUTS
// =============================================================================

// IngredientInput is a client-supplied ingredient without a server id.
type IngredientInput struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes,omitempty"`
}

// RecipeInput carries the fields for creating a recipe.
type RecipeInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Picture     string            `json:"picture,omitempty"`
	Ingredients []IngredientInput `json:"ingredients"`
	Method      []string          `json:"method"`
	Servings    int               `json:"servings"`
	PrepTime    int               `json:"prep_time"`
	CookTime    int               `json:"cook_time"`
	Difficulty  Difficulty        `json:"difficulty"`
	Tags        []string          `json:"tags"`
}

// RecipePatch is a partial update to a recipe. Nil fields are unchanged.
type RecipePatch struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Picture     *string            `json:"picture,omitempty"`
	Ingredients *[]IngredientInput `json:"ingredients,omitempty"`
	Method      *[]string          `json:"method,omitempty"`
	Servings    *int               `json:"servings,omitempty"`
	PrepTime    *int               `json:"prep_time,omitempty"`
	CookTime    *int               `json:"cook_time,omitempty"`
	Difficulty  *Difficulty        `json:"difficulty,omitempty"`
	Tags        *[]string          `json:"tags,omitempty"`
}

// =============================================================================
// CONVERSATION INPUTS
// =============================================================================

// ConversationInput carries the fields for creating a conversation.
type ConversationInput struct {
	Title    string    `json:"title"`
	Summary  string    `json:"summary,omitempty"`
	Messages []Message `json:"messages,omitempty"`
}

// ConversationPatch is a partial update to a conversation.
type ConversationPatch struct {
	Title   *string `json:"title,omitempty"`
	Summary *string `json:"summary,omitempty"`
}

// MessageInput carries the client-supplied fields of a message; id and
// timestamp are assigned at send time.
type MessageInput struct {
	Content  string `json:"content"`
	Role     Role   `json:"role"`
	RecipeID string `json:"recipe_id,omitempty"`
}

// =============================================================================
// INVENTORY INPUTS
// =============================================================================

// InventoryItemInput carries the fields for creating an inventory item.
type InventoryItemInput struct {
	Name       string     `json:"name"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	Category   string     `json:"category"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// InventoryItemPatch is a partial update to an inventory item.
type InventoryItemPatch struct {
	Name       *string     `json:"name,omitempty"`
	Quantity   *float64    `json:"quantity,omitempty"`
	Unit       *string     `json:"unit,omitempty"`
	Category   *string     `json:"category,omitempty"`
	ExpiryDate *time.Time  `json:"expiry_date,omitempty"`
	Notes      *string     `json:"notes,omitempty"`
}
