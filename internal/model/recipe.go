// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the domain entities for the leptinchef client.
package model

import "time"

// =============================================================================
// DIFFICULTY
// =============================================================================

// Difficulty grades how demanding a recipe is to cook.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// String returns the string representation of the difficulty.
func (d Difficulty) String() string {
	return string(d)
}

// Valid reports whether the value is a known difficulty.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// =============================================================================
// INGREDIENT TYPE
// =============================================================================

// Ingredient is one entry in a recipe's ingredient list.
type Ingredient struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"` // Must be > 0
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes,omitempty"`
}

// =============================================================================
// RECIPE TYPE
// =============================================================================

// Recipe is a saved recipe record. Ingredients and method steps are ordered;
// a valid recipe always has at least one ingredient and one method step.
type Recipe struct {
	// Identity
	ID string `json:"id"`

	// Content
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Picture     string       `json:"picture,omitempty"` // Optional URL
	Ingredients []Ingredient `json:"ingredients"`
	Method      []string     `json:"method"`

	// Cooking metadata
	Servings   int        `json:"servings"`  // Positive
	PrepTime   int        `json:"prep_time"` // Minutes, >= 0
	CookTime   int        `json:"cook_time"` // Minutes, >= 0
	Difficulty Difficulty `json:"difficulty"`
	Tags       []string   `json:"tags"`

	// Server-assigned; starts at 0 on creation
	UsageCount int `json:"usage_count"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalTime returns prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// HasTag reports whether the recipe carries the given tag.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	clone := *r
	clone.Ingredients = make([]Ingredient, len(r.Ingredients))
	copy(clone.Ingredients, r.Ingredients)
	clone.Method = make([]string, len(r.Method))
	copy(clone.Method, r.Method)
	clone.Tags = make([]string, len(r.Tags))
	copy(clone.Tags, r.Tags)
	return &clone
}

// =============================================================================
// RECIPE FILTER
// =============================================================================

// RecipeFilter narrows a recipe list read. The zero value matches everything.
// Filters participate in cache keys, so equal values must encode identically.
type RecipeFilter struct {
	Tag        string     `json:"tag,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	MaxTime    int        `json:"max_time,omitempty"` // Total minutes, 0 = unlimited
	Page       int        `json:"page,omitempty"`
	Limit      int        `json:"limit,omitempty"`
}
