// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the domain entities for the leptinchef client.
package model

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// =============================================================================
// ID GENERATION
// =============================================================================

// IDGenerator produces unique identifiers for client-created records.
// Injecting the generator lets tests supply deterministic ids instead of
// relying on time+random suffixes.
type IDGenerator interface {
	// NewID returns a fresh unique id carrying the given prefix,
	// e.g. NewID("msg") -> "msg_9f1c...".
	NewID(prefix string) string
}

// UUIDGenerator is the production generator backed by random UUIDs.
type UUIDGenerator struct{}

// NewID returns a prefixed UUID string.
func (UUIDGenerator) NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// SequenceGenerator produces monotonically increasing ids for tests.
// The zero value is ready to use.
type SequenceGenerator struct {
	n atomic.Int64
}

// NewID returns the next id in the sequence, e.g. "msg_1", "msg_2".
func (g *SequenceGenerator) NewID(prefix string) string {
	return prefix + "_" + strconv.FormatInt(g.n.Add(1), 10)
}
