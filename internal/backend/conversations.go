// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// =============================================================================
// CONVERSATION SERVICE
// =============================================================================

// ListConversations returns a page of conversations, most recently updated
// first. Transcripts are left empty on list reads; GetConversation loads
// them.
func (m *Mock) ListConversations(ctx context.Context, filter model.ConversationFilter) (model.PaginatedResult[model.Conversation], error) {
	var zero model.PaginatedResult[model.Conversation]
	if err := m.sleep(ctx, latencyRead); err != nil {
		return zero, err
	}

	var total int
	if err := m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM conversations").Scan(&total); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := clampLimit(filter.Limit)

	rows, err := m.db.QueryContext(ctx, `
		SELECT id, title, summary, created_at, updated_at FROM conversations
		ORDER BY updated_at DESC LIMIT ? OFFSET ?`, limit, (page-1)*limit)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	convs, err := scanConversations(rows)
	if err != nil {
		return zero, err
	}
	return pageOf(convs, total, page, limit), nil
}

// GetConversation returns one conversation with its full transcript.
func (m *Mock) GetConversation(ctx context.Context, id string) (*model.Conversation, error) {
	if err := m.sleep(ctx, latencyRead); err != nil {
		return nil, err
	}

	conv, err := m.getConversation(ctx, id)
	if err != nil {
		return nil, err
	}
	msgs, err := m.messages(ctx, id)
	if err != nil {
		return nil, err
	}
	conv.Messages = msgs
	return conv, nil
}

func (m *Mock) getConversation(ctx context.Context, id string) (*model.Conversation, error) {
	row := m.db.QueryRowContext(ctx,
		"SELECT id, title, summary, created_at, updated_at FROM conversations WHERE id = ?", id)

	conv, err := scanConversation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// CreateConversation stores a new conversation plus any initial messages.
func (m *Mock) CreateConversation(ctx context.Context, in model.ConversationInput) (*model.Conversation, error) {
	if err := m.sleep(ctx, latencyWrite); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	conv := model.Conversation{
		ID:        m.ids.NewID("conv"),
		Title:     in.Title,
		Summary:   in.Summary,
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  make([]model.Message, 0, len(in.Messages)),
	}

	_, err := m.db.ExecContext(ctx, `
		INSERT INTO conversations (id, title, summary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		conv.ID, conv.Title, conv.Summary, unixNano(now), unixNano(now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	for _, msg := range in.Messages {
		stored := msg
		if stored.ID == "" {
			stored.ID = m.ids.NewID("msg")
		}
		if stored.Timestamp.IsZero() {
			stored.Timestamp = now
		}
		if err := m.insertMessage(ctx, conv.ID, &stored); err != nil {
			return nil, err
		}
		conv.Messages = append(conv.Messages, stored)
	}

	return &conv, nil
}

// UpdateConversation applies the patch and refreshes UpdatedAt. The
// returned conversation carries its transcript.
func (m *Mock) UpdateConversation(ctx context.Context, id string, patch model.ConversationPatch) (*model.Conversation, error) {
	if err := m.sleep(ctx, latencyWrite); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	conv, err := m.getConversation(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		conv.Title = *patch.Title
	}
	if patch.Summary != nil {
		conv.Summary = *patch.Summary
	}
	conv.UpdatedAt = m.now().UTC()

	_, err = m.db.ExecContext(ctx,
		"UPDATE conversations SET title = ?, summary = ?, updated_at = ? WHERE id = ?",
		conv.Title, conv.Summary, unixNano(conv.UpdatedAt), id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	msgs, err := m.messages(ctx, id)
	if err != nil {
		return nil, err
	}
	conv.Messages = msgs
	return conv, nil
}

// DeleteConversation removes the conversation; messages cascade.
func (m *Mock) DeleteConversation(ctx context.Context, id string) error {
	if err := m.sleep(ctx, latencyWrite); err != nil {
		return err
	}

	res, err := m.db.ExecContext(ctx, "DELETE FROM conversations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchConversations matches the query case-insensitively against titles
// and summaries.
func (m *Mock) SearchConversations(ctx context.Context, query string) ([]model.Conversation, error) {
	if err := m.sleep(ctx, latencySearch); err != nil {
		return nil, err
	}

	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, title, summary, created_at, updated_at FROM conversations
		WHERE lower(title) LIKE ? OR lower(summary) LIKE ?
		ORDER BY updated_at DESC`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	return scanConversations(rows)
}

// Messages returns the transcript in chronological order.
func (m *Mock) Messages(ctx context.Context, conversationID string) ([]model.Message, error) {
	if err := m.sleep(ctx, latencyRead); err != nil {
		return nil, err
	}

	if _, err := m.getConversation(ctx, conversationID); err != nil {
		return nil, err
	}
	return m.messages(ctx, conversationID)
}

// SendMessage stores the user's message, generates the assistant's reply,
// and returns the stored user message. The reply lands in the transcript
// with a slightly later timestamp so ordering stays stable.
func (m *Mock) SendMessage(ctx context.Context, conversationID string, in model.MessageInput) (*model.Message, error) {
	if err := m.sleep(ctx, latencySend); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.getConversation(ctx, conversationID); err != nil {
		return nil, err
	}

	now := m.now().UTC()
	msg := model.Message{
		ID:        m.ids.NewID("msg"),
		Role:      in.Role,
		Content:   in.Content,
		RecipeID:  in.RecipeID,
		Timestamp: now,
	}
	if err := m.insertMessage(ctx, conversationID, &msg); err != nil {
		return nil, err
	}

	reply := model.Message{
		ID:        m.ids.NewID("msg"),
		Role:      model.RoleAssistant,
		Content:   assistantReply(in.Content),
		Timestamp: now.Add(time.Millisecond),
	}
	if err := m.insertMessage(ctx, conversationID, &reply); err != nil {
		return nil, err
	}

	_, err := m.db.ExecContext(ctx,
		"UPDATE conversations SET updated_at = ? WHERE id = ?",
		unixNano(reply.Timestamp), conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	return &msg, nil
}

// =============================================================================
// MESSAGE STORAGE
// =============================================================================

func (m *Mock) insertMessage(ctx context.Context, conversationID string, msg *model.Message) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO messages (id, conversation_id, role, content, recipe_id, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		msg.ID, conversationID, string(msg.Role), msg.Content, msg.RecipeID,
		unixNano(msg.Timestamp))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return nil
}

// messages loads the transcript without latency, for internal reuse.
func (m *Mock) messages(ctx context.Context, conversationID string) ([]model.Message, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, role, content, recipe_id, timestamp FROM messages
		WHERE conversation_id = ? ORDER BY timestamp ASC`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	msgs := make([]model.Message, 0)
	for rows.Next() {
		var msg model.Message
		var role string
		var ts int64
		if err := rows.Scan(&msg.ID, &role, &msg.Content, &msg.RecipeID, &ts); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		msg.Role = model.Role(role)
		msg.Timestamp = fromUnixNano(ts)
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return msgs, nil
}

// =============================================================================
// CONVERSATION SCANNING
// =============================================================================

// scanConversation reads one conversation row (no transcript).
func scanConversation(row rowScanner) (*model.Conversation, error) {
	var conv model.Conversation
	var createdAt, updatedAt int64

	err := row.Scan(&conv.ID, &conv.Title, &conv.Summary, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	conv.CreatedAt = fromUnixNano(createdAt)
	conv.UpdatedAt = fromUnixNano(updatedAt)
	conv.Messages = make([]model.Message, 0)
	return &conv, nil
}

// scanConversations drains a result set into a slice.
func scanConversations(rows *sql.Rows) ([]model.Conversation, error) {
	convs := make([]model.Conversation, 0)
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		convs = append(convs, *conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return convs, nil
}
