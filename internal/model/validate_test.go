// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() User {
	now := time.Now()
	return User{
		ID:               "user_1",
		DisplayName:      "Julia",
		MeasurementStyle: MeasurementMetric,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func validRecipeInput() RecipeInput {
	return RecipeInput{
		Title:       "Soup",
		Ingredients: []IngredientInput{{Name: "Carrot", Amount: 2, Unit: "pcs"}},
		Method:      []string{"Chop", "Boil"},
		Servings:    2,
		PrepTime:    10,
		CookTime:    20,
		Difficulty:  DifficultyEasy,
		Tags:        []string{"vegetarian"},
	}
}

// =============================================================================
// USER SCHEMA
// =============================================================================

func TestUserValidate_DisplayNameLength(t *testing.T) {
	u := validUser()

	// 1..50 characters accepted
	u.DisplayName = "J"
	assert.NoError(t, u.Validate())
	u.DisplayName = strings.Repeat("a", 50)
	assert.NoError(t, u.Validate())

	// Empty rejected with the constraint message
	u.DisplayName = ""
	err := u.Validate()
	require.Error(t, err)
	verrs := err.(ValidationErrors)
	assert.True(t, verrs.Has("display_name"))
	assert.Contains(t, err.Error(), "Display name is required")

	// > 50 rejected with the constraint message
	u.DisplayName = strings.Repeat("a", 51)
	err = u.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Display name must be less than 50 characters")
}

func TestUserValidate_ProfilePictureURL(t *testing.T) {
	u := validUser()

	u.ProfilePicture = "https://example.com/avatar.jpg"
	assert.NoError(t, u.Validate())

	u.ProfilePicture = "not a url"
	assert.Error(t, u.Validate())

	// Optional: empty is fine
	u.ProfilePicture = ""
	assert.NoError(t, u.Validate())
}

func TestUserValidate_Timestamps(t *testing.T) {
	u := validUser()
	u.UpdatedAt = u.CreatedAt.Add(-time.Hour)
	err := u.Validate()
	require.Error(t, err)
	assert.True(t, err.(ValidationErrors).Has("updated_at"))
}

// =============================================================================
// INGREDIENT SCHEMA
// =============================================================================

func TestIngredientValidate_AmountPositive(t *testing.T) {
	for _, amount := range []float64{0, -1, -0.001} {
		ing := Ingredient{ID: "ing_1", Name: "Salt", Amount: amount, Unit: "g"}
		err := ing.Validate()
		require.Error(t, err, "amount %v should be rejected", amount)
		assert.Contains(t, err.Error(), "Amount must be positive")
	}

	// Positive accepted regardless of magnitude
	for _, amount := range []float64{0.001, 1, 99999} {
		ing := Ingredient{ID: "ing_1", Name: "Salt", Amount: amount, Unit: "g"}
		assert.NoError(t, ing.Validate(), "amount %v should be accepted", amount)
	}
}

// =============================================================================
// RECIPE SCHEMA
// =============================================================================

func TestRecipeInputValidate_RequiresIngredients(t *testing.T) {
	in := validRecipeInput()
	in.Ingredients = nil

	err := in.Validate()
	require.Error(t, err)
	verrs := err.(ValidationErrors)
	assert.True(t, verrs.Has("ingredients"))
	assert.Contains(t, err.Error(), "At least one ingredient is required")
}

func TestRecipeInputValidate_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RecipeInput)
		wantMsg string
	}{
		{"empty title", func(r *RecipeInput) { r.Title = "" }, "Recipe title is required"},
		{"long title", func(r *RecipeInput) { r.Title = strings.Repeat("x", 101) }, "Title must be less than 100 characters"},
		{"long description", func(r *RecipeInput) { r.Description = strings.Repeat("x", 501) }, "Description must be less than 500 characters"},
		{"empty method", func(r *RecipeInput) { r.Method = nil }, "At least one method step is required"},
		{"blank step", func(r *RecipeInput) { r.Method = []string{"Chop", ""} }, "Method step cannot be empty"},
		{"zero servings", func(r *RecipeInput) { r.Servings = 0 }, "Servings must be a positive integer"},
		{"negative prep", func(r *RecipeInput) { r.PrepTime = -1 }, "Prep time cannot be negative"},
		{"negative cook", func(r *RecipeInput) { r.CookTime = -5 }, "Cook time cannot be negative"},
		{"bad difficulty", func(r *RecipeInput) { r.Difficulty = "impossible" }, "Difficulty must be easy, medium, or hard"},
		{"blank tag", func(r *RecipeInput) { r.Tags = []string{"ok", ""} }, "Tag cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRecipeInput()
			tt.mutate(&in)
			err := in.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRecipeValidate_UsageCount(t *testing.T) {
	r := Recipe{
		ID:          "recipe_1",
		Title:       "Soup",
		Ingredients: []Ingredient{{ID: "ing_1", Name: "Carrot", Amount: 1, Unit: "pcs"}},
		Method:      []string{"Boil"},
		Servings:    2,
		Difficulty:  DifficultyEasy,
		UsageCount:  -1,
	}
	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Usage count cannot be negative")
}

func TestRecipePatchValidate_OnlyPresentFields(t *testing.T) {
	// An empty patch is valid even though a full record would not be
	assert.NoError(t, RecipePatch{}.Validate())

	bad := "impossible"
	patch := RecipePatch{Difficulty: (*Difficulty)(&bad)}
	assert.Error(t, patch.Validate())

	servings := 4
	assert.NoError(t, RecipePatch{Servings: &servings}.Validate())
}

// =============================================================================
// CONVERSATION SCHEMA
// =============================================================================

func TestConversationValidate(t *testing.T) {
	c := Conversation{ID: "conv_1", Title: "Dinner ideas"}
	assert.NoError(t, c.Validate())

	c.Title = ""
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Conversation title is required")

	c.Title = "Dinner ideas"
	c.Summary = strings.Repeat("s", 201)
	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Summary must be less than 200 characters")
}

func TestMessageInputValidate(t *testing.T) {
	assert.NoError(t, MessageInput{Content: "hi", Role: RoleUser}.Validate())

	err := MessageInput{Content: "", Role: RoleUser}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Message content is required")

	err = MessageInput{Content: "hi", Role: "system"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Role must be user or assistant")
}

// =============================================================================
// INVENTORY SCHEMA
// =============================================================================

func TestInventoryItemInputValidate(t *testing.T) {
	valid := InventoryItemInput{Name: "Milk", Quantity: 1, Unit: "l", Category: "dairy"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*InventoryItemInput)
		wantMsg string
	}{
		{"empty name", func(i *InventoryItemInput) { i.Name = "" }, "Item name is required"},
		{"long name", func(i *InventoryItemInput) { i.Name = strings.Repeat("x", 101) }, "Name must be less than 100 characters"},
		{"zero quantity", func(i *InventoryItemInput) { i.Quantity = 0 }, "Quantity must be positive"},
		{"empty unit", func(i *InventoryItemInput) { i.Unit = "" }, "Unit is required"},
		{"empty category", func(i *InventoryItemInput) { i.Category = "" }, "Category is required"},
		{"long notes", func(i *InventoryItemInput) { i.Notes = strings.Repeat("n", 201) }, "Notes must be less than 200 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
