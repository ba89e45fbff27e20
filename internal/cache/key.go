// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cache implements the request-cache layer between the client and
// the backend collaborator: keyed reads with stale windows and retries,
// mutations with invalidation, and background polling.
package cache

import (
	"strconv"
	"strings"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// =============================================================================
// KEYS
// =============================================================================

// Entity names the record kind a key covers.
type Entity string

const (
	EntityRecipes       Entity = "recipes"
	EntityInventory     Entity = "inventory"
	EntityConversations Entity = "conversations"
)

// Query names the read shape within an entity.
type Query string

const (
	QueryList     Query = "list"
	QueryDetail   Query = "detail"
	QuerySearch   Query = "search"
	QueryPopular  Query = "popular"
	QueryRecent   Query = "recent"
	QueryExpiring Query = "expiring"
	QueryMessages Query = "messages"
)

// Key identifies one cached read. Keys are plain comparable values: two
// reads with equal parameters produce equal keys and share an entry.
type Key struct {
	Entity Entity
	Query  Query

	// Param is the canonical encoding of the read's parameters: a record
	// id for detail/messages, a query string for search, an encoded
	// filter for list. Empty when the read takes no parameters.
	Param string
}

// String renders the key for debugging.
func (k Key) String() string {
	if k.Param == "" {
		return string(k.Entity) + "/" + string(k.Query)
	}
	return string(k.Entity) + "/" + string(k.Query) + "/" + k.Param
}

// =============================================================================
// CANONICAL PARAM ENCODING
// =============================================================================

// Filters are encoded field by field in a fixed order with defaults
// normalized, so filters that mean the same thing always collide.

func encodeRecipeFilter(f model.RecipeFilter) string {
	var sb strings.Builder
	writeParam(&sb, "tag", f.Tag)
	writeParam(&sb, "difficulty", string(f.Difficulty))
	if f.MaxTime > 0 {
		writeParam(&sb, "max_time", strconv.Itoa(f.MaxTime))
	}
	writePage(&sb, f.Page, f.Limit)
	return sb.String()
}

func encodeInventoryFilter(f model.InventoryFilter) string {
	var sb strings.Builder
	writeParam(&sb, "category", f.Category)
	writePage(&sb, f.Page, f.Limit)
	return sb.String()
}

func encodeConversationFilter(f model.ConversationFilter) string {
	var sb strings.Builder
	writePage(&sb, f.Page, f.Limit)
	return sb.String()
}

func encodeLimit(limit int) string {
	if limit <= 0 {
		limit = model.DefaultPageLimit
	}
	return "limit=" + strconv.Itoa(limit)
}

func encodeDays(days int) string {
	return "days=" + strconv.Itoa(days)
}

func writeParam(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	if sb.Len() > 0 {
		sb.WriteByte('&')
	}
	sb.WriteString(name)
	sb.WriteByte('=')
	sb.WriteString(value)
}

func writePage(sb *strings.Builder, page, limit int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = model.DefaultPageLimit
	}
	writeParam(sb, "page", strconv.Itoa(page))
	writeParam(sb, "limit", strconv.Itoa(limit))
}
