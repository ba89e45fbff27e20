// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures the mock backend.
type Options struct {
	// DatabasePath is the SQLite file to use. Empty means in-memory.
	DatabasePath string

	// LatencyScale multiplies every artificial latency. 1.0 approximates a
	// remote backend; 0 disables latency entirely (tests).
	LatencyScale float64

	// IDs generates record ids. Defaults to UUIDGenerator.
	IDs model.IDGenerator

	// Now is the time source. Defaults to time.Now.
	Now func() time.Time

	// Seed loads the sample dataset on first open.
	Seed bool
}

// DefaultOptions returns options approximating a remote backend.
func DefaultOptions() Options {
	return Options{
		LatencyScale: 1.0,
		IDs:          &model.UUIDGenerator{},
		Now:          time.Now,
		Seed:         true,
	}
}

// Base latencies per call class, before scaling. A small random jitter is
// added so the client's loading states exercise realistic variance.
const (
	latencyRead   = 200 * time.Millisecond
	latencySearch = 350 * time.Millisecond
	latencyWrite  = 400 * time.Millisecond
	latencySend   = 900 * time.Millisecond
)

// =============================================================================
// MOCK BACKEND
// =============================================================================

// Mock implements all three backend services against a local SQLite
// database with artificial per-call latency. One Mock value satisfies
// RecipeService, InventoryService, and ConversationService.
type Mock struct {
	db   *sql.DB
	ids  model.IDGenerator
	now  func() time.Time
	mu   sync.Mutex // Serializes multi-statement operations
	opts Options
}

// NewMock opens the database, applies the schema, and optionally seeds the
// sample dataset.
func NewMock(opts Options) (*Mock, error) {
	if opts.IDs == nil {
		opts.IDs = &model.UUIDGenerator{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	path := opts.DatabasePath
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	// For in-memory databases this also keeps every query on the same
	// connection, which is what makes :memory: usable at all.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	m := &Mock{
		db:   db,
		ids:  opts.IDs,
		now:  opts.Now,
		opts: opts,
	}

	if opts.Seed {
		if err := m.seed(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	return m, nil
}

// Services returns the mock wrapped in the service bundle.
func (m *Mock) Services() Services {
	return Services{Recipes: m, Inventory: m, Conversations: m}
}

// Close releases the database.
func (m *Mock) Close() error {
	return m.db.Close()
}

// =============================================================================
// LATENCY
// =============================================================================

// sleep blocks for the scaled latency or until the context is cancelled.
func (m *Mock) sleep(ctx context.Context, base time.Duration) error {
	if m.opts.LatencyScale <= 0 {
		return ctx.Err()
	}

	jitter := time.Duration(rand.Int63n(int64(base) / 4))
	d := time.Duration(float64(base+jitter) * m.opts.LatencyScale)

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// unixNano converts a time to its stored representation.
func unixNano(t time.Time) int64 {
	return t.UnixNano()
}

// fromUnixNano converts a stored timestamp back to UTC time.
func fromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

// clampLimit applies the default page limit when none is given.
func clampLimit(limit int) int {
	if limit <= 0 {
		return model.DefaultPageLimit
	}
	return limit
}

// pageOf assembles a PaginatedResult from a counted SQL page.
func pageOf[T any](items []T, total, page, limit int) model.PaginatedResult[T] {
	if page <= 0 {
		page = 1
	}
	return model.PaginatedResult[T]{
		Items:   items,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasNext: page*limit < total,
		HasPrev: page > 1,
	}
}
