// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

// Schema creates the mock backend's tables. Timestamps are stored as
// Unix nanoseconds; recipe ingredients, method steps, and tags are stored
// as JSON columns since the client never queries inside them.
const Schema = `
CREATE TABLE IF NOT EXISTS recipes (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	picture     TEXT NOT NULL DEFAULT '',
	ingredients TEXT NOT NULL,
	method      TEXT NOT NULL,
	servings    INTEGER NOT NULL,
	prep_time   INTEGER NOT NULL,
	cook_time   INTEGER NOT NULL,
	difficulty  TEXT NOT NULL,
	tags        TEXT NOT NULL,
	usage_count INTEGER NOT NULL DEFAULT 0,
	created_at  INTEGER NOT NULL,
	updated_at  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_recipes_usage   ON recipes(usage_count DESC);
CREATE INDEX IF NOT EXISTS idx_recipes_created ON recipes(created_at DESC);

CREATE TABLE IF NOT EXISTS inventory_items (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	quantity    REAL NOT NULL,
	unit        TEXT NOT NULL,
	category    TEXT NOT NULL,
	expiry_date INTEGER,
	notes       TEXT NOT NULL DEFAULT '',
	created_at  INTEGER NOT NULL,
	updated_at  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_inventory_category ON inventory_items(category);
CREATE INDEX IF NOT EXISTS idx_inventory_expiry   ON inventory_items(expiry_date);

CREATE TABLE IF NOT EXISTS conversations (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	summary    TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_conversations_updated ON conversations(updated_at DESC);

CREATE TABLE IF NOT EXISTS messages (
	id              TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
	role            TEXT NOT NULL,
	content         TEXT NOT NULL,
	recipe_id       TEXT NOT NULL DEFAULT '',
	timestamp       INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id, timestamp);
`
