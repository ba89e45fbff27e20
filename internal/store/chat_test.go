// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"testing"
	"time"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

func newTestChatStore(t *testing.T) *ChatStore {
	t.Helper()
	dir, err := NewDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewDir failed: %v", err)
	}
	return NewChatStore(dir, &model.SequenceGenerator{})
}

// =============================================================================
// MESSAGE MUTATIONS
// =============================================================================

func TestChatStore_AddMessage(t *testing.T) {
	s := newTestChatStore(t)
	s.SetError("previous failure")

	msg := s.AddMessage(model.MessageInput{Content: "Pasta ideas?", Role: model.RoleUser})

	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Content != "Pasta ideas?" || msgs[0].Role != model.RoleUser {
		t.Errorf("message fields not preserved: %+v", msgs[0])
	}
	if msgs[0].ID == "" || msgs[0].Timestamp.IsZero() {
		t.Error("id and timestamp should be freshly generated")
	}
	if msg.ID != msgs[0].ID {
		t.Error("returned message should match stored message")
	}
	if s.Error() != "" {
		t.Error("AddMessage should clear the error")
	}

	// Repeated calls generate unique ids, always appending
	second := s.AddMessage(model.MessageInput{Content: "Pasta ideas?", Role: model.RoleUser})
	if second.ID == msg.ID {
		t.Error("ids should be unique across repeated calls")
	}
	if s.MessageCount() != 2 {
		t.Error("duplicate content should still append")
	}
}

func TestChatStore_AddMessages(t *testing.T) {
	s := newTestChatStore(t)
	s.SetError("boom")

	msgs := []model.Message{
		{ID: "msg_a", Role: model.RoleUser, Content: "hi", Timestamp: time.Now()},
		{ID: "msg_b", Role: model.RoleAssistant, Content: "hello", Timestamp: time.Now()},
	}
	s.AddMessages(msgs)

	if s.MessageCount() != 2 {
		t.Fatalf("expected 2 messages, got %d", s.MessageCount())
	}
	if got := s.Messages()[0].ID; got != "msg_a" {
		t.Errorf("ids should be kept as-is, got %q", got)
	}
	if s.Error() != "" {
		t.Error("AddMessages should clear the error")
	}

	// Empty input is a no-op that still clears the error
	s.SetError("boom again")
	s.AddMessages(nil)
	if s.MessageCount() != 2 {
		t.Error("empty AddMessages should not change the transcript")
	}
	if s.Error() != "" {
		t.Error("empty AddMessages should still clear the error")
	}
}

func TestChatStore_ClearMessages(t *testing.T) {
	s := newTestChatStore(t)
	s.AddMessage(model.MessageInput{Content: "hi", Role: model.RoleUser})
	s.SetError("stale")
	s.SetLoading(true)

	s.ClearMessages()

	if s.MessageCount() != 0 {
		t.Error("transcript should be empty")
	}
	if s.Error() != "stale" || !s.IsLoading() {
		t.Error("ClearMessages must not touch error or loading state")
	}
}

func TestChatStore_UpdateMessage(t *testing.T) {
	s := newTestChatStore(t)
	msg := s.AddMessage(model.MessageInput{Content: "draft", Role: model.RoleUser})

	content := "final"
	s.UpdateMessage(msg.ID, model.MessagePatch{Content: &content})

	got := s.Messages()[0]
	if got.Content != "final" {
		t.Errorf("content = %q, want final", got.Content)
	}
	if got.Role != model.RoleUser || got.ID != msg.ID {
		t.Error("untouched fields must be preserved")
	}

	// Unknown id is a no-op, not an error
	s.UpdateMessage("msg_missing", model.MessagePatch{Content: &content})
	if s.MessageCount() != 1 {
		t.Error("unknown id must not change the transcript")
	}
}

func TestChatStore_RemoveMessage_Idempotent(t *testing.T) {
	s := newTestChatStore(t)
	msg := s.AddMessage(model.MessageInput{Content: "oops", Role: model.RoleUser})

	s.RemoveMessage(msg.ID)
	if s.MessageCount() != 0 {
		t.Fatal("message should be removed")
	}

	// Removing a non-existent id leaves messages unchanged
	s.RemoveMessage(msg.ID)
	s.RemoveMessage("msg_never_existed")
	if s.MessageCount() != 0 {
		t.Error("removal of absent id must be a no-op")
	}
}

// =============================================================================
// REQUEST STATE
// =============================================================================

func TestChatStore_SetCurrentConversation(t *testing.T) {
	s := newTestChatStore(t)
	s.SetError("old error")

	s.SetCurrentConversation("conv_1")

	if s.CurrentConversationID() != "conv_1" {
		t.Error("conversation id not set")
	}
	if s.Error() != "" {
		t.Error("switching conversations must clear the error")
	}

	s.SetCurrentConversation("")
	if s.CurrentConversationID() != "" {
		t.Error("empty id should clear the active conversation")
	}
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func TestChatStore_PersistedSubset(t *testing.T) {
	base := t.TempDir()
	dir, _ := NewDir(base)

	s := NewChatStore(dir, &model.SequenceGenerator{})
	s.AddMessage(model.MessageInput{Content: "persist me", Role: model.RoleUser})
	s.SetCurrentConversation("conv_9")
	s.SetLoading(true)
	s.SetError("transient")

	// Simulate a restart
	dir2, _ := NewDir(base)
	restored := NewChatStore(dir2, &model.SequenceGenerator{})

	if restored.MessageCount() != 1 {
		t.Fatalf("messages should survive restart, got %d", restored.MessageCount())
	}
	if restored.Messages()[0].Content != "persist me" {
		t.Error("message content should survive restart")
	}
	if restored.CurrentConversationID() != "conv_9" {
		t.Error("current conversation should survive restart")
	}
	if restored.IsLoading() || restored.Error() != "" {
		t.Error("loading and error state must reset on restart")
	}
}

func TestChatStore_EphemeralWithoutDir(t *testing.T) {
	s := NewChatStore(nil, &model.SequenceGenerator{})
	s.AddMessage(model.MessageInput{Content: "hi", Role: model.RoleUser})
	if err := s.Flush(); err != nil {
		t.Errorf("ephemeral store Flush should be nil, got %v", err)
	}
}
