// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides the client-side state containers.
package store

import (
	"sync"
	"time"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// chatSnapshotName is the snapshot file name for the chat container.
const chatSnapshotName = "chat"

// =============================================================================
// CHAT STORE
// =============================================================================

// ChatStore holds the transcript of the active conversation plus transient
// request state. It is passive state, not a saga: a failed send leaves the
// transcript unchanged except for the caller's explicit SetError.
type ChatStore struct {
	mu sync.Mutex

	// Persisted across restarts
	messages              []model.Message
	currentConversationID string

	// Always reset to defaults on load
	isLoading bool
	errMsg    string

	// Collaborators
	ids model.IDGenerator
	now func() time.Time
	dir *Dir // nil = ephemeral (no persistence)

	lastSaveErr error
}

// chatSnapshot is the persisted subset of the chat container.
type chatSnapshot struct {
	Messages              []model.Message `json:"messages"`
	CurrentConversationID string          `json:"current_conversation_id,omitempty"`
}

// NewChatStore creates a chat container, restoring the persisted snapshot
// when dir is non-nil. Loading/error state always starts at defaults.
func NewChatStore(dir *Dir, ids model.IDGenerator) *ChatStore {
	s := &ChatStore{
		messages: make([]model.Message, 0),
		ids:      ids,
		now:      time.Now,
		dir:      dir,
	}

	if dir != nil {
		var snap chatSnapshot
		if err := dir.Load(chatSnapshotName, &snap); err == nil {
			if snap.Messages != nil {
				s.messages = snap.Messages
			}
			s.currentConversationID = snap.CurrentConversationID
		}
		// Missing or corrupt snapshots fall back to defaults.
	}

	return s
}

// SetClock overrides the time source. Intended for tests.
func (s *ChatStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// =============================================================================
// MESSAGE MUTATIONS
// =============================================================================

// AddMessage assigns a fresh id and the current timestamp to the input,
// appends it to the transcript, and clears any error. There is no duplicate
// detection; the message is always appended. Returns the stored message.
func (s *ChatStore) AddMessage(in model.MessageInput) model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := model.Message{
		ID:        s.ids.NewID("msg"),
		Role:      in.Role,
		Content:   in.Content,
		RecipeID:  in.RecipeID,
		Timestamp: s.now(),
	}

	s.messages = append(s.messages, msg)
	s.errMsg = ""
	s.saveLocked()
	return msg
}

// AddMessages appends messages as-is (ids and timestamps already set) and
// clears any error. An empty input is a no-op that still clears the error.
func (s *ChatStore) AddMessages(msgs []model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msgs...)
	s.errMsg = ""
	s.saveLocked()
}

// ClearMessages empties the transcript. Loading and error state are not
// touched.
func (s *ChatStore) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = make([]model.Message, 0)
	s.saveLocked()
}

// UpdateMessage applies the patch to the matching message. If no message
// matches the id, this is a no-op, not an error.
func (s *ChatStore) UpdateMessage(id string, patch model.MessagePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID != id {
			continue
		}
		if patch.Content != nil {
			s.messages[i].Content = *patch.Content
		}
		if patch.Role != nil {
			s.messages[i].Role = *patch.Role
		}
		if patch.RecipeID != nil {
			s.messages[i].RecipeID = *patch.RecipeID
		}
		s.saveLocked()
		return
	}
}

// RemoveMessage removes the matching message. No-op if absent.
func (s *ChatStore) RemoveMessage(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			s.saveLocked()
			return
		}
	}
}

// =============================================================================
// REQUEST STATE
// =============================================================================

// SetLoading sets the in-flight flag.
func (s *ChatStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = loading
}

// SetError records an error message. An empty string clears it.
func (s *ChatStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

// SetCurrentConversation switches the active conversation. Switching
// discards prior error state. An empty id means no active conversation.
func (s *ChatStore) SetCurrentConversation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentConversationID = id
	s.errMsg = ""
	s.saveLocked()
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Messages returns a copy of the transcript in chronological order.
func (s *ChatStore) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// MessageCount returns the number of messages in the transcript.
func (s *ChatStore) MessageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// IsLoading returns the in-flight flag.
func (s *ChatStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// Error returns the current error message, or "" when there is none.
func (s *ChatStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// CurrentConversationID returns the active conversation id, or "" when no
// conversation is open.
func (s *ChatStore) CurrentConversationID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentConversationID
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// Flush re-writes the snapshot and returns the persistence error, if any.
func (s *ChatStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked()
	return s.lastSaveErr
}

// saveLocked persists the snapshot subset (must hold lock). Failures are
// recorded rather than propagated; mutations always take effect in memory.
func (s *ChatStore) saveLocked() {
	if s.dir == nil {
		return
	}
	s.lastSaveErr = s.dir.Save(chatSnapshotName, chatSnapshot{
		Messages:              s.messages,
		CurrentConversationID: s.currentConversationID,
	})
}
