// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the domain entities for the leptinchef client.
package model

import (
	"net/url"
	"strings"
)

// Validation runs entirely client-side, before anything reaches the backend.
// Every violated constraint is reported field-by-field with a human-readable
// message; a failed validation never produces a partial result.

// =============================================================================
// VALIDATION ERRORS
// =============================================================================

// ValidationError describes one violated constraint on one field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every violation found in a single pass.
type ValidationErrors []ValidationError

// Error implements the error interface, joining all messages.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any violation names the given field.
func (e ValidationErrors) Has(field string) bool {
	for _, ve := range e {
		if ve.Field == field {
			return true
		}
	}
	return false
}

// errsOrNil converts an empty slice to a nil error.
func errsOrNil(errs ValidationErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validURL reports whether s parses as an absolute URL.
func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// =============================================================================
// USER VALIDATION
// =============================================================================

// Validate checks the user record against its schema.
func (u *User) Validate() error {
	var errs ValidationErrors

	name := []rune(u.DisplayName)
	if len(name) == 0 {
		errs = append(errs, ValidationError{"display_name", "Display name is required"})
	} else if len(name) > 50 {
		errs = append(errs, ValidationError{"display_name", "Display name must be less than 50 characters"})
	}

	if u.ProfilePicture != "" && !validURL(u.ProfilePicture) {
		errs = append(errs, ValidationError{"profile_picture", "Profile picture must be a valid URL"})
	}

	if !u.MeasurementStyle.Valid() {
		errs = append(errs, ValidationError{"measurement_style", "Measurement style must be metric or us"})
	}

	if u.UpdatedAt.Before(u.CreatedAt) {
		errs = append(errs, ValidationError{"updated_at", "Updated time cannot precede created time"})
	}

	return errsOrNil(errs)
}

// Validate checks a user patch; only present fields are validated.
func (p UserPatch) Validate() error {
	var errs ValidationErrors

	if p.DisplayName != nil {
		name := []rune(*p.DisplayName)
		if len(name) == 0 {
			errs = append(errs, ValidationError{"display_name", "Display name is required"})
		} else if len(name) > 50 {
			errs = append(errs, ValidationError{"display_name", "Display name must be less than 50 characters"})
		}
	}
	if p.ProfilePicture != nil && *p.ProfilePicture != "" && !validURL(*p.ProfilePicture) {
		errs = append(errs, ValidationError{"profile_picture", "Profile picture must be a valid URL"})
	}
	if p.MeasurementStyle != nil && !p.MeasurementStyle.Valid() {
		errs = append(errs, ValidationError{"measurement_style", "Measurement style must be metric or us"})
	}

	return errsOrNil(errs)
}

// =============================================================================
// RECIPE VALIDATION
// =============================================================================

// Validate checks one ingredient.
func (i *Ingredient) Validate() error {
	return errsOrNil(validateIngredient(i.Name, i.Amount, i.Unit, "ingredient"))
}

// Validate checks one ingredient input.
func (i IngredientInput) Validate() error {
	return errsOrNil(validateIngredient(i.Name, i.Amount, i.Unit, "ingredient"))
}

func validateIngredient(name string, amount float64, unit, field string) ValidationErrors {
	var errs ValidationErrors
	if name == "" {
		errs = append(errs, ValidationError{field + ".name", "Ingredient name is required"})
	}
	if amount <= 0 {
		errs = append(errs, ValidationError{field + ".amount", "Amount must be positive"})
	}
	if unit == "" {
		errs = append(errs, ValidationError{field + ".unit", "Unit is required"})
	}
	return errs
}

// Validate checks the full recipe record against its schema.
func (r *Recipe) Validate() error {
	inputs := make([]IngredientInput, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		inputs[i] = IngredientInput{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit, Notes: ing.Notes}
	}

	errs := validateRecipeFields(r.Title, r.Description, r.Picture, inputs, r.Method,
		r.Servings, r.PrepTime, r.CookTime, r.Difficulty, r.Tags)

	if r.UsageCount < 0 {
		errs = append(errs, ValidationError{"usage_count", "Usage count cannot be negative"})
	}

	return errsOrNil(errs)
}

// Validate checks a recipe create form.
func (in RecipeInput) Validate() error {
	return errsOrNil(validateRecipeFields(in.Title, in.Description, in.Picture,
		in.Ingredients, in.Method, in.Servings, in.PrepTime, in.CookTime, in.Difficulty, in.Tags))
}

// Validate checks a recipe patch; only present fields are validated.
func (p RecipePatch) Validate() error {
	var errs ValidationErrors

	if p.Title != nil {
		errs = append(errs, validateTitle(*p.Title, "Recipe title is required")...)
	}
	if p.Description != nil && len([]rune(*p.Description)) > 500 {
		errs = append(errs, ValidationError{"description", "Description must be less than 500 characters"})
	}
	if p.Picture != nil && *p.Picture != "" && !validURL(*p.Picture) {
		errs = append(errs, ValidationError{"picture", "Picture must be a valid URL"})
	}
	if p.Ingredients != nil {
		if len(*p.Ingredients) == 0 {
			errs = append(errs, ValidationError{"ingredients", "At least one ingredient is required"})
		}
		for _, ing := range *p.Ingredients {
			errs = append(errs, validateIngredient(ing.Name, ing.Amount, ing.Unit, "ingredient")...)
		}
	}
	if p.Method != nil {
		errs = append(errs, validateMethod(*p.Method)...)
	}
	if p.Servings != nil && *p.Servings <= 0 {
		errs = append(errs, ValidationError{"servings", "Servings must be a positive integer"})
	}
	if p.PrepTime != nil && *p.PrepTime < 0 {
		errs = append(errs, ValidationError{"prep_time", "Prep time cannot be negative"})
	}
	if p.CookTime != nil && *p.CookTime < 0 {
		errs = append(errs, ValidationError{"cook_time", "Cook time cannot be negative"})
	}
	if p.Difficulty != nil && !p.Difficulty.Valid() {
		errs = append(errs, ValidationError{"difficulty", "Difficulty must be easy, medium, or hard"})
	}
	if p.Tags != nil {
		errs = append(errs, validateTags(*p.Tags)...)
	}

	return errsOrNil(errs)
}

func validateRecipeFields(title, description, picture string, ingredients []IngredientInput,
	method []string, servings, prepTime, cookTime int, difficulty Difficulty, tags []string) ValidationErrors {

	var errs ValidationErrors

	errs = append(errs, validateTitle(title, "Recipe title is required")...)

	if len([]rune(description)) > 500 {
		errs = append(errs, ValidationError{"description", "Description must be less than 500 characters"})
	}
	if picture != "" && !validURL(picture) {
		errs = append(errs, ValidationError{"picture", "Picture must be a valid URL"})
	}

	if len(ingredients) == 0 {
		errs = append(errs, ValidationError{"ingredients", "At least one ingredient is required"})
	}
	for _, ing := range ingredients {
		errs = append(errs, validateIngredient(ing.Name, ing.Amount, ing.Unit, "ingredient")...)
	}

	errs = append(errs, validateMethod(method)...)

	if servings <= 0 {
		errs = append(errs, ValidationError{"servings", "Servings must be a positive integer"})
	}
	if prepTime < 0 {
		errs = append(errs, ValidationError{"prep_time", "Prep time cannot be negative"})
	}
	if cookTime < 0 {
		errs = append(errs, ValidationError{"cook_time", "Cook time cannot be negative"})
	}
	if !difficulty.Valid() {
		errs = append(errs, ValidationError{"difficulty", "Difficulty must be easy, medium, or hard"})
	}

	errs = append(errs, validateTags(tags)...)

	return errs
}

func validateTitle(title, requiredMsg string) ValidationErrors {
	var errs ValidationErrors
	runes := []rune(title)
	if len(runes) == 0 {
		errs = append(errs, ValidationError{"title", requiredMsg})
	} else if len(runes) > 100 {
		errs = append(errs, ValidationError{"title", "Title must be less than 100 characters"})
	}
	return errs
}

func validateMethod(method []string) ValidationErrors {
	var errs ValidationErrors
	if len(method) == 0 {
		errs = append(errs, ValidationError{"method", "At least one method step is required"})
	}
	for _, step := range method {
		if step == "" {
			errs = append(errs, ValidationError{"method", "Method step cannot be empty"})
			break
		}
	}
	return errs
}

func validateTags(tags []string) ValidationErrors {
	for _, tag := range tags {
		if tag == "" {
			return ValidationErrors{{"tags", "Tag cannot be empty"}}
		}
	}
	return nil
}

// =============================================================================
// CONVERSATION VALIDATION
// =============================================================================

// Validate checks one message.
func (m *Message) Validate() error {
	var errs ValidationErrors
	if m.Content == "" {
		errs = append(errs, ValidationError{"content", "Message content is required"})
	}
	if !m.Role.Valid() {
		errs = append(errs, ValidationError{"role", "Role must be user or assistant"})
	}
	return errsOrNil(errs)
}

// Validate checks a message send form.
func (in MessageInput) Validate() error {
	var errs ValidationErrors
	if in.Content == "" {
		errs = append(errs, ValidationError{"content", "Message content is required"})
	}
	if !in.Role.Valid() {
		errs = append(errs, ValidationError{"role", "Role must be user or assistant"})
	}
	return errsOrNil(errs)
}

// Validate checks the full conversation record against its schema.
func (c *Conversation) Validate() error {
	errs := validateConversationFields(c.Title, c.Summary)
	for i := range c.Messages {
		if err := c.Messages[i].Validate(); err != nil {
			errs = append(errs, err.(ValidationErrors)...)
		}
	}
	return errsOrNil(errs)
}

// Validate checks a conversation create form.
func (in ConversationInput) Validate() error {
	errs := validateConversationFields(in.Title, in.Summary)
	for i := range in.Messages {
		if err := in.Messages[i].Validate(); err != nil {
			errs = append(errs, err.(ValidationErrors)...)
		}
	}
	return errsOrNil(errs)
}

// Validate checks a conversation patch; only present fields are validated.
func (p ConversationPatch) Validate() error {
	var errs ValidationErrors
	if p.Title != nil {
		errs = append(errs, validateTitle(*p.Title, "Conversation title is required")...)
	}
	if p.Summary != nil && len([]rune(*p.Summary)) > 200 {
		errs = append(errs, ValidationError{"summary", "Summary must be less than 200 characters"})
	}
	return errsOrNil(errs)
}

func validateConversationFields(title, summary string) ValidationErrors {
	errs := validateTitle(title, "Conversation title is required")
	if len([]rune(summary)) > 200 {
		errs = append(errs, ValidationError{"summary", "Summary must be less than 200 characters"})
	}
	return errs
}

// =============================================================================
// INVENTORY VALIDATION
// =============================================================================

// Validate checks the full inventory item against its schema.
func (i *InventoryItem) Validate() error {
	return errsOrNil(validateInventoryFields(i.Name, i.Quantity, i.Unit, i.Category, i.Notes))
}

// Validate checks an inventory item create form.
func (in InventoryItemInput) Validate() error {
	return errsOrNil(validateInventoryFields(in.Name, in.Quantity, in.Unit, in.Category, in.Notes))
}

// Validate checks an inventory item patch; only present fields are validated.
func (p InventoryItemPatch) Validate() error {
	var errs ValidationErrors

	if p.Name != nil {
		name := []rune(*p.Name)
		if len(name) == 0 {
			errs = append(errs, ValidationError{"name", "Item name is required"})
		} else if len(name) > 100 {
			errs = append(errs, ValidationError{"name", "Name must be less than 100 characters"})
		}
	}
	if p.Quantity != nil && *p.Quantity <= 0 {
		errs = append(errs, ValidationError{"quantity", "Quantity must be positive"})
	}
	if p.Unit != nil && *p.Unit == "" {
		errs = append(errs, ValidationError{"unit", "Unit is required"})
	}
	if p.Category != nil && *p.Category == "" {
		errs = append(errs, ValidationError{"category", "Category is required"})
	}
	if p.Notes != nil && len([]rune(*p.Notes)) > 200 {
		errs = append(errs, ValidationError{"notes", "Notes must be less than 200 characters"})
	}

	return errsOrNil(errs)
}

func validateInventoryFields(name string, quantity float64, unit, category, notes string) ValidationErrors {
	var errs ValidationErrors

	runes := []rune(name)
	if len(runes) == 0 {
		errs = append(errs, ValidationError{"name", "Item name is required"})
	} else if len(runes) > 100 {
		errs = append(errs, ValidationError{"name", "Name must be less than 100 characters"})
	}

	if quantity <= 0 {
		errs = append(errs, ValidationError{"quantity", "Quantity must be positive"})
	}
	if unit == "" {
		errs = append(errs, ValidationError{"unit", "Unit is required"})
	}
	if category == "" {
		errs = append(errs, ValidationError{"category", "Category is required"})
	}
	if len([]rune(notes)) > 200 {
		errs = append(errs, ValidationError{"notes", "Notes must be less than 200 characters"})
	}

	return errs
}
