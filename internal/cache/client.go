// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/leptinchef/leptinchef-tui/internal/backend"
	"github.com/leptinchef/leptinchef-tui/internal/store"
)

// =============================================================================
// STALE WINDOWS
// =============================================================================

// How long each read is served from cache before a refetch is triggered.
// Windows reflect how quickly each dataset actually moves.
const (
	StaleRecipesList   = 2 * time.Minute
	StaleRecipeDetail  = 5 * time.Minute
	StaleRecipeSearch  = 1 * time.Minute
	StaleRecipePopular = 10 * time.Minute
	StaleRecipeRecent  = 2 * time.Minute

	StaleInventoryList   = 1 * time.Minute
	StaleInventoryDetail = 2 * time.Minute
	StaleExpiring        = 5 * time.Minute

	StaleConversationsList  = 2 * time.Minute
	StaleConversationDetail = 5 * time.Minute
	StaleConversationSearch = 1 * time.Minute
	StaleMessages           = 30 * time.Second
)

// MinSearchLength is the shortest query that triggers a search read.
// Shorter queries resolve to an empty result without touching the backend.
const MinSearchLength = 2

// Retry policy: reads tolerate more transient failure than writes, writes
// must not multiply side effects.
const (
	DefaultReadRetries  = 2
	DefaultWriteRetries = 1

	retryBaseDelay = 500 * time.Millisecond
)

// =============================================================================
// CLIENT
// =============================================================================

// Options configures the cache client.
type Options struct {
	// Services is the backend collaborator.
	Services backend.Services

	// Chat receives conversation side effects (current id, transcript,
	// loading and error state).
	Chat *store.ChatStore

	// UI receives mutation outcome notifications.
	UI *store.UIStore

	// Now is the time source. Defaults to time.Now.
	Now func() time.Time

	// ReadRetries / WriteRetries override the retry counts. Negative
	// disables retrying entirely; zero means default.
	ReadRetries  int
	WriteRetries int

	// BackoffBase overrides the first retry delay. Zero means default;
	// tests set a negative value to disable waiting.
	BackoffBase time.Duration
}

// Client is the request-cache layer. All reads go through the entry store;
// all mutations go to the backend and then reconcile the store and the
// state containers.
type Client struct {
	services backend.Services
	chat     *store.ChatStore
	ui       *store.UIStore

	entries *entryStore
	now     func() time.Time

	readRetries  int
	writeRetries int
	backoffBase  time.Duration
}

// NewClient creates a cache client.
func NewClient(opts Options) *Client {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	readRetries := opts.ReadRetries
	switch {
	case readRetries == 0:
		readRetries = DefaultReadRetries
	case readRetries < 0:
		readRetries = 0
	}
	writeRetries := opts.WriteRetries
	switch {
	case writeRetries == 0:
		writeRetries = DefaultWriteRetries
	case writeRetries < 0:
		writeRetries = 0
	}
	backoffBase := opts.BackoffBase
	if backoffBase == 0 {
		backoffBase = retryBaseDelay
	}
	if backoffBase < 0 {
		backoffBase = 0
	}

	return &Client{
		services:     opts.Services,
		chat:         opts.Chat,
		ui:           opts.UI,
		entries:      newEntryStore(),
		now:          opts.Now,
		readRetries:  readRetries,
		writeRetries: writeRetries,
		backoffBase:  backoffBase,
	}
}

// Invalidate drops every cached entry for the entity's given query kinds
// (all kinds when none are named). The next read refetches.
func (c *Client) Invalidate(ent Entity, queries ...Query) {
	c.entries.invalidate(ent, queries...)
}

// Clear drops the whole cache.
func (c *Client) Clear() {
	c.entries.clear()
}

// =============================================================================
// READ-THROUGH
// =============================================================================

// readThrough serves the key from cache while the entry is fresh, and
// otherwise fetches with retries. The resolved value overwrites whatever
// the entry holds (last resolved wins).
func readThrough[T any](ctx context.Context, c *Client, key Key, staleFor time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	if e, ok := c.entries.get(key); ok {
		if c.now().Sub(e.fetchedAt) < staleFor {
			if v, ok := e.value.(T); ok {
				return v, nil
			}
		}
	}

	var zero T
	v, err := withRetry(ctx, c.readRetries, c.backoffBase, fetch)
	if err != nil {
		return zero, err
	}

	c.entries.set(key, v, c.now())
	return v, nil
}

// withRetry runs fn with up to retries additional attempts and exponential
// backoff. Not-found and context errors are terminal; retrying them would
// only repeat the answer.
func withRetry[T any](ctx context.Context, retries int, base time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 && base > 0 {
			delay := base * (1 << (attempt - 1))
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C:
			}
		}

		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		if errors.Is(err, backend.ErrNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return zero, err
		}
		lastErr = err
	}

	return zero, lastErr
}

// =============================================================================
// NOTIFICATIONS
// =============================================================================

// notifySuccess raises a success toast for a completed mutation.
func (c *Client) notifySuccess(message string) {
	if c.ui == nil {
		return
	}
	c.ui.ShowNotification(store.NotificationInput{
		Type:    store.NotificationSuccess,
		Message: message,
	})
}

// notifyError raises an error toast carrying the collaborator's message,
// falling back to a fixed description of the failed operation.
func (c *Client) notifyError(err error, fallback string) {
	message := fallback
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	if c.ui == nil {
		return
	}
	c.ui.ShowNotification(store.NotificationInput{
		Type:    store.NotificationError,
		Message: message,
	})
}
