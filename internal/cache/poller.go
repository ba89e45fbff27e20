// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cache

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// BACKGROUND POLLING
// =============================================================================

// Poll intervals for the two datasets that move without user action.
const (
	PollMessages = 30 * time.Second
	PollExpiring = 5 * time.Minute

	// pollTick is how often the poller wakes up to check its limiters.
	pollTick = time.Second
)

// PollerOptions configures the background poller.
type PollerOptions struct {
	// Messages enables transcript polling for the open conversation.
	Messages bool

	// Expiring enables expiring-inventory polling.
	Expiring bool

	// ExpiringDays is the window passed to the expiring read.
	ExpiringDays int

	// OnUpdate, when set, runs after a poll refreshes data so the
	// presentation loop can repaint.
	OnUpdate func()
}

// Poller periodically refreshes the transcript of the open conversation
// and the expiring-items read. Rate limiters keep each dataset at its own
// cadence regardless of the wake-up tick.
type Poller struct {
	client *Client
	opts   PollerOptions

	messages *rate.Limiter
	expiring *rate.Limiter
}

// NewPoller creates a poller over the cache client.
func NewPoller(client *Client, opts PollerOptions) *Poller {
	if opts.ExpiringDays <= 0 {
		opts.ExpiringDays = 7
	}
	return &Poller{
		client:   client,
		opts:     opts,
		messages: rate.NewLimiter(rate.Every(PollMessages), 1),
		expiring: rate.NewLimiter(rate.Every(PollExpiring), 1),
	}
}

// Run polls until the context is cancelled. Call in a goroutine.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(pollTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// tick runs at most one refresh per dataset, gated by the limiters.
func (p *Poller) tick(ctx context.Context) {
	updated := false

	if p.opts.Messages && p.client.chat != nil {
		if id := p.client.chat.CurrentConversationID(); id != "" && p.messages.Allow() {
			if p.refreshMessages(ctx, id) {
				updated = true
			}
		}
	}

	if p.opts.Expiring && p.expiring.Allow() {
		key := Key{Entity: EntityInventory, Query: QueryExpiring, Param: encodeDays(p.opts.ExpiringDays)}
		p.client.entries.remove(key)
		if _, err := p.client.ExpiringItems(ctx, p.opts.ExpiringDays); err == nil {
			updated = true
		}
	}

	if updated && p.opts.OnUpdate != nil {
		p.opts.OnUpdate()
	}
}

// refreshMessages force-refetches the transcript and mirrors it into the
// chat container. Poll failures are silent; the last good transcript
// stays on screen.
func (p *Poller) refreshMessages(ctx context.Context, conversationID string) bool {
	key := Key{Entity: EntityConversations, Query: QueryMessages, Param: conversationID}
	p.client.entries.remove(key)

	msgs, err := p.client.Messages(ctx, conversationID)
	if err != nil {
		return false
	}

	// The conversation may have been switched while the fetch ran
	if p.client.chat.CurrentConversationID() != conversationID {
		return false
	}
	p.client.chat.ClearMessages()
	p.client.chat.AddMessages(msgs)
	return true
}
