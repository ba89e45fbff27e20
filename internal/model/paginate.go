// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the domain entities for the leptinchef client.
package model

// =============================================================================
// PAGINATION
// =============================================================================

// DefaultPageLimit is the page size used when a filter leaves Limit at 0.
const DefaultPageLimit = 20

// PaginatedResult is one page of a backend list read.
type PaginatedResult[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// Paginate slices items into the requested page and fills in the page
// metadata. Page numbers start at 1; out-of-range pages yield empty pages.
func Paginate[T any](items []T, page, limit int) PaginatedResult[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	total := len(items)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return PaginatedResult[T]{
		Items:   items[start:end],
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasNext: end < total,
		HasPrev: page > 1 && total > 0,
	}
}
