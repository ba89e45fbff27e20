// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// =============================================================================
// RECIPE SERVICE
// =============================================================================

const recipeColumns = `id, title, description, picture, ingredients, method,
	servings, prep_time, cook_time, difficulty, tags, usage_count,
	created_at, updated_at`

// ListRecipes returns a page of recipes matching the filter, newest first.
func (m *Mock) ListRecipes(ctx context.Context, filter model.RecipeFilter) (model.PaginatedResult[model.Recipe], error) {
	var zero model.PaginatedResult[model.Recipe]
	if err := m.sleep(ctx, latencyRead); err != nil {
		return zero, err
	}

	where, args := recipeWhere(filter)

	var total int
	if err := m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes"+where, args...).Scan(&total); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := clampLimit(filter.Limit)

	query := "SELECT " + recipeColumns + " FROM recipes" + where +
		" ORDER BY created_at DESC LIMIT ? OFFSET ?"
	rows, err := m.db.QueryContext(ctx, query, append(args, limit, (page-1)*limit)...)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	recipes, err := scanRecipes(rows)
	if err != nil {
		return zero, err
	}
	return pageOf(recipes, total, page, limit), nil
}

// GetRecipe returns one recipe by id.
func (m *Mock) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	if err := m.sleep(ctx, latencyRead); err != nil {
		return nil, err
	}
	return m.getRecipe(ctx, id)
}

// getRecipe fetches without latency, for internal reuse after mutations.
func (m *Mock) getRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	row := m.db.QueryRowContext(ctx,
		"SELECT "+recipeColumns+" FROM recipes WHERE id = ?", id)

	r, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// CreateRecipe stores a new recipe with backend-assigned id and timestamps.
func (m *Mock) CreateRecipe(ctx context.Context, in model.RecipeInput) (*model.Recipe, error) {
	if err := m.sleep(ctx, latencyWrite); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	r := model.Recipe{
		ID:          m.ids.NewID("recipe"),
		Title:       in.Title,
		Description: in.Description,
		Picture:     in.Picture,
		Ingredients: make([]model.Ingredient, 0, len(in.Ingredients)),
		Method:      append([]string(nil), in.Method...),
		Servings:    in.Servings,
		PrepTime:    in.PrepTime,
		CookTime:    in.CookTime,
		Difficulty:  in.Difficulty,
		Tags:        append([]string(nil), in.Tags...),
		UsageCount:  0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, ing := range in.Ingredients {
		r.Ingredients = append(r.Ingredients, model.Ingredient{
			ID:     m.ids.NewID("ing"),
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
			Notes:  ing.Notes,
		})
	}

	if err := m.insertRecipe(ctx, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRecipe applies the patch and refreshes UpdatedAt.
func (m *Mock) UpdateRecipe(ctx context.Context, id string, patch model.RecipePatch) (*model.Recipe, error) {
	if err := m.sleep(ctx, latencyWrite); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.getRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		r.Title = *patch.Title
	}
	if patch.Description != nil {
		r.Description = *patch.Description
	}
	if patch.Picture != nil {
		r.Picture = *patch.Picture
	}
	if patch.Ingredients != nil {
		r.Ingredients = make([]model.Ingredient, 0, len(*patch.Ingredients))
		for _, ing := range *patch.Ingredients {
			r.Ingredients = append(r.Ingredients, model.Ingredient{
				ID:     m.ids.NewID("ing"),
				Name:   ing.Name,
				Amount: ing.Amount,
				Unit:   ing.Unit,
				Notes:  ing.Notes,
			})
		}
	}
	if patch.Method != nil {
		r.Method = append([]string(nil), *patch.Method...)
	}
	if patch.Servings != nil {
		r.Servings = *patch.Servings
	}
	if patch.PrepTime != nil {
		r.PrepTime = *patch.PrepTime
	}
	if patch.CookTime != nil {
		r.CookTime = *patch.CookTime
	}
	if patch.Difficulty != nil {
		r.Difficulty = *patch.Difficulty
	}
	if patch.Tags != nil {
		r.Tags = append([]string(nil), *patch.Tags...)
	}
	r.UpdatedAt = m.now().UTC()

	ingredients, method, tags, err := encodeRecipeJSON(r)
	if err != nil {
		return nil, err
	}

	_, err = m.db.ExecContext(ctx, `
		UPDATE recipes SET title = ?, description = ?, picture = ?,
			ingredients = ?, method = ?, servings = ?, prep_time = ?,
			cook_time = ?, difficulty = ?, tags = ?, updated_at = ?
		WHERE id = ?`,
		r.Title, r.Description, r.Picture, ingredients, method,
		r.Servings, r.PrepTime, r.CookTime, string(r.Difficulty), tags,
		unixNano(r.UpdatedAt), id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return r, nil
}

// DeleteRecipe removes the recipe.
func (m *Mock) DeleteRecipe(ctx context.Context, id string) error {
	if err := m.sleep(ctx, latencyWrite); err != nil {
		return err
	}

	res, err := m.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchRecipes matches the query case-insensitively against title,
// description, and tags.
func (m *Mock) SearchRecipes(ctx context.Context, query string) ([]model.Recipe, error) {
	if err := m.sleep(ctx, latencySearch); err != nil {
		return nil, err
	}

	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := m.db.QueryContext(ctx, `
		SELECT `+recipeColumns+` FROM recipes
		WHERE lower(title) LIKE ? OR lower(description) LIKE ? OR lower(tags) LIKE ?
		ORDER BY usage_count DESC, created_at DESC`,
		pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// PopularRecipes returns the most-used recipes.
func (m *Mock) PopularRecipes(ctx context.Context, limit int) ([]model.Recipe, error) {
	if err := m.sleep(ctx, latencyRead); err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, `
		SELECT `+recipeColumns+` FROM recipes
		ORDER BY usage_count DESC, created_at DESC LIMIT ?`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// RecentRecipes returns the most recently created recipes.
func (m *Mock) RecentRecipes(ctx context.Context, limit int) ([]model.Recipe, error) {
	if err := m.sleep(ctx, latencyRead); err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, `
		SELECT `+recipeColumns+` FROM recipes
		ORDER BY created_at DESC LIMIT ?`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// =============================================================================
// RECIPE SCANNING
// =============================================================================

// recipeWhere builds the WHERE clause for a list filter. Tag matching uses
// a quoted-JSON LIKE so "veg" does not match "vegan".
func recipeWhere(filter model.RecipeFilter) (string, []any) {
	var clauses []string
	var args []any

	if filter.Tag != "" {
		clauses = append(clauses, "tags LIKE ?")
		args = append(args, `%"`+filter.Tag+`"%`)
	}
	if filter.Difficulty != "" {
		clauses = append(clauses, "difficulty = ?")
		args = append(args, string(filter.Difficulty))
	}
	if filter.MaxTime > 0 {
		clauses = append(clauses, "prep_time + cook_time <= ?")
		args = append(args, filter.MaxTime)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// insertRecipe writes a fully-populated recipe row.
func (m *Mock) insertRecipe(ctx context.Context, r *model.Recipe) error {
	ingredients, method, tags, err := encodeRecipeJSON(r)
	if err != nil {
		return err
	}

	_, err = m.db.ExecContext(ctx, `
		INSERT INTO recipes (`+recipeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Title, r.Description, r.Picture, ingredients, method,
		r.Servings, r.PrepTime, r.CookTime, string(r.Difficulty), tags,
		r.UsageCount, unixNano(r.CreatedAt), unixNano(r.UpdatedAt))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return nil
}

// encodeRecipeJSON marshals the JSON-backed columns.
func encodeRecipeJSON(r *model.Recipe) (ingredients, method, tags string, err error) {
	ib, err := json.Marshal(r.Ingredients)
	if err != nil {
		return "", "", "", err
	}
	mb, err := json.Marshal(r.Method)
	if err != nil {
		return "", "", "", err
	}
	tb, err := json.Marshal(r.Tags)
	if err != nil {
		return "", "", "", err
	}
	return string(ib), string(mb), string(tb), nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecipe reads one recipe row.
func scanRecipe(row rowScanner) (*model.Recipe, error) {
	var r model.Recipe
	var ingredients, method, tags, difficulty string
	var createdAt, updatedAt int64

	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.Picture,
		&ingredients, &method, &r.Servings, &r.PrepTime, &r.CookTime,
		&difficulty, &tags, &r.UsageCount, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	if err := json.Unmarshal([]byte(ingredients), &r.Ingredients); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	if err := json.Unmarshal([]byte(method), &r.Method); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	if err := json.Unmarshal([]byte(tags), &r.Tags); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	r.Difficulty = model.Difficulty(difficulty)
	r.CreatedAt = fromUnixNano(createdAt)
	r.UpdatedAt = fromUnixNano(updatedAt)
	return &r, nil
}

// scanRecipes drains a result set into a slice.
func scanRecipes(rows *sql.Rows) ([]model.Recipe, error) {
	recipes := make([]model.Recipe, 0)
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return recipes, nil
}
