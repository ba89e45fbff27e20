// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the domain entities for the leptinchef client.
package model

import "time"

// =============================================================================
// INVENTORY ITEM TYPE
// =============================================================================

// InventoryItem is one item in the user's kitchen inventory.
type InventoryItem struct {
	// Identity
	ID string `json:"id"`

	// Content
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"` // Must be > 0
	Unit     string  `json:"unit"`
	Category string  `json:"category"`

	// Optional
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Notes      string     `json:"notes,omitempty"` // <= 200 chars

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsExpiringSoon reports whether the item expires within the window.
// Items without an expiry date never expire.
func (i *InventoryItem) IsExpiringSoon(now time.Time, window time.Duration) bool {
	if i.ExpiryDate == nil {
		return false
	}
	return i.ExpiryDate.Before(now.Add(window)) && i.ExpiryDate.After(now)
}

// IsExpired reports whether the item's expiry date has passed.
func (i *InventoryItem) IsExpired(now time.Time) bool {
	return i.ExpiryDate != nil && i.ExpiryDate.Before(now)
}

// Clone creates a deep copy of the item.
func (i *InventoryItem) Clone() *InventoryItem {
	clone := *i
	if i.ExpiryDate != nil {
		t := *i.ExpiryDate
		clone.ExpiryDate = &t
	}
	return &clone
}

// =============================================================================
// INVENTORY FILTER
// =============================================================================

// InventoryFilter narrows an inventory list read.
type InventoryFilter struct {
	Category string `json:"category,omitempty"`
	Page     int    `json:"page,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}
