// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the domain entities for the leptinchef client.
//
// Entities mirror the backend's records: User, Recipe, Ingredient,
// Conversation, Message, and InventoryItem. The backend owns every entity;
// client-side copies held in stores and caches are never authoritative and
// are invalidated and refetched rather than reconciled.
//
// The package also provides:
//   - Validation schemas with per-field human-readable messages (validate.go)
//   - Create/Update input forms that omit server-assigned fields (inputs.go)
//   - An injectable ID generator so tests can use deterministic ids (id.go)
//   - Paginated result and filter types shared with the backend contract
package model
