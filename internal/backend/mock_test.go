// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// newTestMock returns a seeded in-memory mock with latency disabled.
func newTestMock(t *testing.T) *Mock {
	t.Helper()
	m, err := NewMock(Options{
		LatencyScale: 0,
		IDs:          &model.SequenceGenerator{},
		Seed:         true,
	})
	if err != nil {
		t.Fatalf("NewMock failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

// =============================================================================
// RECIPES
// =============================================================================

func TestMock_ListRecipes(t *testing.T) {
	m := newTestMock(t)
	ctx := context.Background()

	page, err := m.ListRecipes(ctx, model.RecipeFilter{})
	if err != nil {
		t.Fatalf("ListRecipes failed: %v", err)
	}
	if page.Total == 0 || len(page.Items) == 0 {
		t.Fatal("seeded backend should return recipes")
	}
	if page.Page != 1 || page.HasPrev {
		t.Error("first page metadata is wrong")
	}
}

func TestMock_ListRecipes_Filters(t *testing.T) {
	m := newTestMock(t)
	ctx := context.Background()

	byTag, err := m.ListRecipes(ctx, model.RecipeFilter{Tag: "quick"})
	if err != nil {
		t.Fatalf("ListRecipes failed: %v", err)
	}
	if len(byTag.Items) == 0 {
		t.Fatal("expected quick-tagged recipes in the seed data")
	}
	for _, r := range byTag.Items {
		if !r.HasTag("quick") {
			t.Errorf("recipe %q does not carry the filtered tag", r.Title)
		}
	}

	// Tag match must be exact, not substring
	partial, err := m.ListRecipes(ctx, model.RecipeFilter{Tag: "qui"})
	if err != nil {
		t.Fatalf("ListRecipes failed: %v", err)
	}
	if len(partial.Items) != 0 {
		t.Error("partial tag should not match")
	}

	byTime, err := m.ListRecipes(ctx, model.RecipeFilter{MaxTime: 15})
	if err != nil {
		t.Fatalf("ListRecipes failed: %v", err)
	}
	for _, r := range byTime.Items {
		if r.TotalTime() > 15 {
			t.Errorf("recipe %q exceeds the max time filter", r.Title)
		}
	}
}

func TestMock_RecipeCRUD(t *testing.T) {
	m := newTestMock(t)
	ctx := context.Background()

	created, err := m.CreateRecipe(ctx, model.RecipeInput{
		Title:       "Test Toast",
		Ingredients: []model.IngredientInput{{Name: "Bread", Amount: 2, Unit: "slices"}},
		Method:      []string{"Toast the bread."},
		Servings:    1,
		Difficulty:  model.DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("CreateRecipe failed: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Error("backend must assign id and timestamps")
	}
	if created.UsageCount != 0 {
		t.Error("usage count starts at zero")
	}
	if len(created.Ingredients) != 1 || created.Ingredients[0].ID == "" {
		t.Error("ingredients should get backend-assigned ids")
	}

	got, err := m.GetRecipe(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetRecipe failed: %v", err)
	}
	if got.Title != "Test Toast" || len(got.Method) != 1 {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	title := "Better Toast"
	updated, err := m.UpdateRecipe(ctx, created.ID, model.RecipePatch{Title: &title})
	if err != nil {
		t.Fatalf("UpdateRecipe failed: %v", err)
	}
	if updated.Title != "Better Toast" {
		t.Error("patch not applied")
	}
	if updated.Servings != 1 {
		t.Error("unpatched fields must be preserved")
	}

	if err := m.DeleteRecipe(ctx, created.ID); err != nil {
		t.Fatalf("DeleteRecipe failed: %v", err)
	}
	if _, err := m.GetRecipe(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted recipe should be gone, got %v", err)
	}
}

func TestMock_UnknownIDs(t *testing.T) {
	m := newTestMock(t)
	ctx := context.Background()

	if _, err := m.GetRecipe(ctx, "recipe_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRecipe: want ErrNotFound, got %v", err)
	}
	title := "x"
	if _, err := m.UpdateRecipe(ctx, "recipe_missing", model.RecipePatch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateRecipe: want ErrNotFound, got %v", err)
	}
	if err := m.DeleteRecipe(ctx, "recipe_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteRecipe: want ErrNotFound, got %v", err)
	}
	if _, err := m.GetItem(ctx, "item_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetItem: want ErrNotFound, got %v", err)
	}
	if _, err := m.GetConversation(ctx, "conv_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetConversation: want ErrNotFound, got %v", err)
	}
	if _, err := m.SendMessage(ctx, "conv_missing", model.MessageInput{Content: "hi", Role: model.RoleUser}); !errors.Is(err, ErrNotFound) {
		t.Errorf("SendMessage: want ErrNotFound, got %v", err)
	}
}

func TestMock_SearchPopularRecent(t *testing.T) {
	m := newTestMock(t)
	ctx := context.Background()

	found, err := m.SearchRecipes(ctx, "spaghetti")
	if err != nil {
		t.Fatalf("SearchRecipes failed: %v", err)
	}
	if len(found) == 0 {
		t.Fatal("search should find the seeded spaghetti recipe")
	}

	popular, err := m.PopularRecipes(ctx, 3)
	if err != nil {
		t.Fatalf("PopularRecipes failed: %v", err)
	}
	if len(popular) != 3 {
		t.Fatalf("expected 3 popular recipes, got %d", len(popular))
	}
	for i := 1; i < len(popular); i++ {
		if popular[i].UsageCount > popular[i-1].UsageCount {
			t.Error("popular recipes must be ordered by usage count descending")
		}
	}

	recent, err := m.RecentRecipes(ctx, 3)
	if err != nil {
		t.Fatalf("RecentRecipes failed: %v", err)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Error("recent recipes must be ordered newest first")
		}
	}
}

// =============================================================================
// INVENTORY
// =============================================================================

func TestMock_InventoryCRUD(t *testing.T) {
	m := newTestMock(t)
	ctx := context.Background()

	expiry := time.Now().Add(48 * time.Hour)
	created, err := m.CreateItem(ctx, model.InventoryItemInput{
		Name: "Butter", Quantity: 250, Unit: "g", Category: "Dairy",
		ExpiryDate: &expiry,
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	if created.ID == "" || created.ExpiryDate == nil {
		t.Error("id and expiry date should be set")
	}

	qty := 125.0
	updated, err := m.UpdateItem(ctx, created.ID, model.InventoryItemPatch{Quantity: &qty})
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if updated.Quantity != 125 || updated.Name != "Butter" {
		t.Errorf("patch semantics broken: %+v", updated)
	}
	if updated.ExpiryDate == nil {
		t.Error("expiry date must survive an unrelated patch")
	}

	if err := m.DeleteItem(ctx, created.ID); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if err := m.DeleteItem(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Error("second delete should report ErrNotFound")
	}
}

func TestMock_ListItems_CategoryFilter(t *testing.T) {
	m := newTestMock(t)
	ctx := context.Background()

	page, err := m.ListItems(ctx, model.InventoryFilter{Category: "Dairy"})
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(page.Items) == 0 {
		t.Fatal("seed data should include dairy items")
	}
	for _, item := range page.Items {
		if item.Category != "Dairy" {
			t.Errorf("item %q leaked through the category filter", item.Name)
		}
	}
}

func TestMock_ExpiringItems(t *testing.T) {
	m := newTestMock(t)
	ctx := context.Background()

	expiring, err := m.ExpiringItems(ctx, 7)
	if err != nil {
		t.Fatalf("ExpiringItems failed: %v", err)
	}
	if len(expiring) == 0 {
		t.Fatal("seed data should include items expiring within a week")
	}
	now := time.Now()
	for i, item := range expiring {
		if item.ExpiryDate == nil {
			t.Fatal("items without expiry must never be included")
		}
		if item.ExpiryDate.After(now.Add(7 * 24 * time.Hour)) {
			t.Errorf("item %q expires outside the window", item.Name)
		}
		if i > 0 && item.ExpiryDate.Before(*expiring[i-1].ExpiryDate) {
			t.Error("expiring items must be ordered soonest first")
		}
	}
}

// =============================================================================
// CONVERSATIONS
// =============================================================================

func TestMock_ConversationLifecycle(t *testing.T) {
	m := newTestMock(t)
	ctx := context.Background()

	created, err := m.CreateConversation(ctx, model.ConversationInput{Title: "Dinner plans"})
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("conversation id should be assigned")
	}

	sent, err := m.SendMessage(ctx, created.ID, model.MessageInput{
		Content: "What pasta should I make?", Role: model.RoleUser,
	})
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if sent.Role != model.RoleUser || sent.ID == "" {
		t.Errorf("returned message should be the stored user message: %+v", sent)
	}

	// The assistant reply is queued behind the user message
	msgs, err := m.Messages(ctx, created.ID)
	if err != nil {
		t.Fatalf("Messages failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected user message plus reply, got %d messages", len(msgs))
	}
	if msgs[0].ID != sent.ID || msgs[1].Role != model.RoleAssistant {
		t.Error("transcript order should be user message then assistant reply")
	}
	if !msgs[1].Timestamp.After(msgs[0].Timestamp) {
		t.Error("reply must be timestamped after the user message")
	}

	title := "Pasta night"
	updated, err := m.UpdateConversation(ctx, created.ID, model.ConversationPatch{Title: &title})
	if err != nil {
		t.Fatalf("UpdateConversation failed: %v", err)
	}
	if updated.Title != "Pasta night" || len(updated.Messages) != 2 {
		t.Errorf("update should return the patched conversation with transcript: %+v", updated)
	}

	if err := m.DeleteConversation(ctx, created.ID); err != nil {
		t.Fatalf("DeleteConversation failed: %v", err)
	}
	if _, err := m.Messages(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Error("messages of a deleted conversation should be gone")
	}
}

func TestMock_ListConversations_Order(t *testing.T) {
	m := newTestMock(t)
	ctx := context.Background()

	a, _ := m.CreateConversation(ctx, model.ConversationInput{Title: "First"})
	b, _ := m.CreateConversation(ctx, model.ConversationInput{Title: "Second"})

	// Touching the older conversation moves it to the front
	if _, err := m.SendMessage(ctx, a.ID, model.MessageInput{Content: "hi", Role: model.RoleUser}); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	page, err := m.ListConversations(ctx, model.ConversationFilter{})
	if err != nil {
		t.Fatalf("ListConversations failed: %v", err)
	}
	if len(page.Items) < 2 {
		t.Fatalf("expected at least 2 conversations, got %d", len(page.Items))
	}
	if page.Items[0].ID != a.ID {
		t.Error("most recently updated conversation should come first")
	}
	if page.Items[1].ID != b.ID {
		t.Error("untouched conversation should follow")
	}
}

func TestMock_SearchConversations(t *testing.T) {
	m := newTestMock(t)
	ctx := context.Background()

	if _, err := m.CreateConversation(ctx, model.ConversationInput{
		Title: "Weeknight pasta", Summary: "Quick dinner ideas",
	}); err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}

	byTitle, err := m.SearchConversations(ctx, "PASTA")
	if err != nil {
		t.Fatalf("SearchConversations failed: %v", err)
	}
	if len(byTitle) != 1 {
		t.Errorf("case-insensitive title search should match, got %d", len(byTitle))
	}

	bySummary, err := m.SearchConversations(ctx, "dinner ideas")
	if err != nil {
		t.Fatalf("SearchConversations failed: %v", err)
	}
	if len(bySummary) != 1 {
		t.Errorf("summary search should match, got %d", len(bySummary))
	}
}

// =============================================================================
// LATENCY + CONTEXT
// =============================================================================

func TestMock_ContextCancellation(t *testing.T) {
	m, err := NewMock(Options{
		LatencyScale: 1.0,
		IDs:          &model.SequenceGenerator{},
		Seed:         false,
	})
	if err != nil {
		t.Fatalf("NewMock failed: %v", err)
	}
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.ListRecipes(ctx, model.RecipeFilter{}); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context should abort the call, got %v", err)
	}
}
