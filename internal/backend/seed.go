// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"context"
	"strings"
	"time"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// =============================================================================
// SEED DATA
// =============================================================================

// seed loads the sample dataset. Seeding is skipped when recipes already
// exist, so a file-backed database keeps user data across runs.
func (m *Mock) seed() error {
	ctx := context.Background()

	var count int
	if err := m.db.QueryRow("SELECT COUNT(*) FROM recipes").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := m.now().UTC()

	recipes := seedRecipes()
	for i, r := range recipes {
		r.ID = m.ids.NewID("recipe")
		for j := range r.Ingredients {
			r.Ingredients[j].ID = m.ids.NewID("ing")
		}
		// Stagger creation times so "recent" ordering is meaningful
		r.CreatedAt = now.Add(-time.Duration(len(recipes)-i) * 24 * time.Hour)
		r.UpdatedAt = r.CreatedAt
		if err := m.insertRecipe(ctx, &r); err != nil {
			return err
		}
	}

	for _, item := range seedItems(now) {
		item.ID = m.ids.NewID("item")
		item.CreatedAt = now
		item.UpdatedAt = now
		if err := m.insertItem(ctx, &item); err != nil {
			return err
		}
	}

	return nil
}

func seedRecipes() []model.Recipe {
	return []model.Recipe{
		{
			Title:       "Spaghetti Aglio e Olio",
			Description: "Garlic, olive oil, chili flakes. Dinner in fifteen minutes.",
			Ingredients: []model.Ingredient{
				{Name: "Spaghetti", Amount: 400, Unit: "g"},
				{Name: "Garlic", Amount: 6, Unit: "cloves", Notes: "thinly sliced"},
				{Name: "Olive oil", Amount: 80, Unit: "ml"},
				{Name: "Chili flakes", Amount: 1, Unit: "tsp"},
			},
			Method: []string{
				"Boil the spaghetti in well-salted water until just shy of al dente.",
				"Warm the oil over low heat and soften the garlic without coloring it.",
				"Add chili flakes, then the drained pasta with a splash of pasta water.",
				"Toss until glossy and serve immediately.",
			},
			Servings:   4,
			PrepTime:   5,
			CookTime:   10,
			Difficulty: model.DifficultyEasy,
			Tags:       []string{"pasta", "italian", "quick"},
			UsageCount: 12,
		},
		{
			Title:       "Chickpea Coconut Curry",
			Description: "A pantry curry that tastes like you planned it.",
			Ingredients: []model.Ingredient{
				{Name: "Chickpeas", Amount: 800, Unit: "g", Notes: "two cans, drained"},
				{Name: "Coconut milk", Amount: 400, Unit: "ml"},
				{Name: "Onion", Amount: 1, Unit: "large"},
				{Name: "Curry paste", Amount: 3, Unit: "tbsp"},
				{Name: "Spinach", Amount: 150, Unit: "g"},
			},
			Method: []string{
				"Soften the diced onion, then fry the curry paste until fragrant.",
				"Add chickpeas and coconut milk and simmer for ten minutes.",
				"Stir in the spinach off the heat and season to taste.",
			},
			Servings:   4,
			PrepTime:   10,
			CookTime:   20,
			Difficulty: model.DifficultyEasy,
			Tags:       []string{"curry", "vegan", "pantry"},
			UsageCount: 8,
		},
		{
			Title:       "Shakshuka",
			Description: "Eggs poached in a spiced tomato and pepper sauce.",
			Ingredients: []model.Ingredient{
				{Name: "Eggs", Amount: 6, Unit: "pieces"},
				{Name: "Crushed tomatoes", Amount: 800, Unit: "g"},
				{Name: "Red bell pepper", Amount: 2, Unit: "pieces"},
				{Name: "Cumin", Amount: 2, Unit: "tsp"},
				{Name: "Paprika", Amount: 2, Unit: "tsp"},
			},
			Method: []string{
				"Stew the peppers with the spices until soft.",
				"Add the tomatoes and reduce to a thick sauce.",
				"Make wells, crack in the eggs, and cover until the whites set.",
				"Finish with herbs and serve with bread.",
			},
			Servings:   3,
			PrepTime:   10,
			CookTime:   25,
			Difficulty: model.DifficultyMedium,
			Tags:       []string{"eggs", "breakfast", "vegetarian"},
			UsageCount: 5,
		},
		{
			Title:       "Beef Bourguignon",
			Description: "Slow-braised beef in red wine. A project, but worth it.",
			Ingredients: []model.Ingredient{
				{Name: "Beef chuck", Amount: 1.5, Unit: "kg", Notes: "cut into large cubes"},
				{Name: "Red wine", Amount: 750, Unit: "ml"},
				{Name: "Bacon", Amount: 200, Unit: "g"},
				{Name: "Pearl onions", Amount: 300, Unit: "g"},
				{Name: "Mushrooms", Amount: 400, Unit: "g"},
				{Name: "Carrots", Amount: 3, Unit: "pieces"},
			},
			Method: []string{
				"Brown the beef in batches in bacon fat.",
				"Deglaze with wine, return the beef, and braise low for three hours.",
				"Glaze the onions and mushrooms separately and fold in at the end.",
				"Rest overnight if you can; it improves.",
			},
			Servings:   6,
			PrepTime:   40,
			CookTime:   210,
			Difficulty: model.DifficultyHard,
			Tags:       []string{"beef", "french", "braise"},
			UsageCount: 2,
		},
		{
			Title:       "Miso Soup",
			Description: "The five-minute bowl that fixes most evenings.",
			Ingredients: []model.Ingredient{
				{Name: "Dashi stock", Amount: 800, Unit: "ml"},
				{Name: "Miso paste", Amount: 3, Unit: "tbsp"},
				{Name: "Silken tofu", Amount: 200, Unit: "g"},
				{Name: "Wakame", Amount: 2, Unit: "tbsp"},
			},
			Method: []string{
				"Heat the dashi to just below a simmer.",
				"Whisk the miso through a strainer into the stock.",
				"Add tofu cubes and wakame and warm through without boiling.",
			},
			Servings:   4,
			PrepTime:   5,
			CookTime:   5,
			Difficulty: model.DifficultyEasy,
			Tags:       []string{"soup", "japanese", "quick"},
			UsageCount: 9,
		},
	}
}

func seedItems(now time.Time) []model.InventoryItem {
	in := func(days int) *time.Time {
		t := now.Add(time.Duration(days) * 24 * time.Hour)
		return &t
	}
	return []model.InventoryItem{
		{Name: "Olive oil", Quantity: 500, Unit: "ml", Category: "Pantry"},
		{Name: "Spaghetti", Quantity: 1, Unit: "kg", Category: "Pantry"},
		{Name: "Chickpeas", Quantity: 4, Unit: "cans", Category: "Pantry"},
		{Name: "Eggs", Quantity: 10, Unit: "pieces", Category: "Dairy", ExpiryDate: in(9)},
		{Name: "Milk", Quantity: 1, Unit: "l", Category: "Dairy", ExpiryDate: in(4)},
		{Name: "Spinach", Quantity: 150, Unit: "g", Category: "Produce", ExpiryDate: in(2), Notes: "use soon"},
		{Name: "Garlic", Quantity: 3, Unit: "bulbs", Category: "Produce"},
		{Name: "Coconut milk", Quantity: 2, Unit: "cans", Category: "Pantry"},
	}
}

// =============================================================================
// CANNED REPLIES
// =============================================================================

// assistantReply picks a canned reply for the mock assistant. A crude
// keyword match keeps the demo conversation from feeling completely canned.
func assistantReply(userContent string) string {
	lower := strings.ToLower(userContent)
	switch {
	case strings.Contains(lower, "pasta") || strings.Contains(lower, "spaghetti"):
		return "For a fast weeknight pasta, try **Spaghetti Aglio e Olio**. " +
			"You only need garlic, olive oil, and chili flakes. Want the full method?"
	case strings.Contains(lower, "vegan") || strings.Contains(lower, "vegetarian"):
		return "The **Chickpea Coconut Curry** is a good fit. It is vegan as written " +
			"and comes together from pantry staples in about half an hour."
	case strings.Contains(lower, "breakfast") || strings.Contains(lower, "egg"):
		return "**Shakshuka** would be my pick. Eggs poached in a spiced tomato " +
			"sauce, ready in about thirty-five minutes."
	case strings.Contains(lower, "expir") || strings.Contains(lower, "inventory"):
		return "Check the inventory page for items expiring soon. Spinach and milk " +
			"tend to go first; the curry and the shakshuka both use them up well."
	default:
		return "I can suggest recipes based on what you have, walk you through a " +
			"method step by step, or help plan around items that are about to " +
			"expire. What are you in the mood for?"
	}
}
