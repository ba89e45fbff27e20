// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the domain entities for the leptinchef client.
package model

import (
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Chef"
	default:
		return string(r)
	}
}

// Valid reports whether the value is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content
	Content string `json:"content"`

	// RecipeID is a weak reference to a recipe mentioned by the message.
	// No ownership: deleting the recipe does not cascade here.
	RecipeID string `json:"recipe_id,omitempty"`
}

// Preview returns the first maxRunes characters of the content, flattened
// to a single line.
func (m *Message) Preview(maxRunes int) string {
	content := m.Content
	runes := []rune(content)
	if len(runes) > maxRunes {
		if maxRunes > 3 {
			content = string(runes[:maxRunes-3]) + "..."
		} else {
			content = string(runes[:maxRunes])
		}
	}
	out := make([]rune, 0, len(content))
	for _, r := range content {
		if r == '\n' || r == '\r' {
			r = ' '
		}
		out = append(out, r)
	}
	return string(out)
}

// MessagePatch is a partial update to a Message. Nil fields are unchanged.
type MessagePatch struct {
	Content  *string `json:"content,omitempty"`
	Role     *Role   `json:"role,omitempty"`
	RecipeID *string `json:"recipe_id,omitempty"`
}

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds a chat transcript with metadata. Messages are ordered
// chronologically; insertion order is chronological order.
type Conversation struct {
	// Identity
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Messages
	Messages []Message `json:"messages"`
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// LastMessage returns the most recent message, or nil if empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

// Preview returns a short one-line preview of the conversation.
func (c *Conversation) Preview() string {
	if c.Summary != "" {
		return c.Summary
	}
	for i := range c.Messages {
		if c.Messages[i].Role == RoleUser {
			return c.Messages[i].Preview(80)
		}
	}
	return "Empty conversation"
}

// Clone creates a deep copy of the conversation.
func (c *Conversation) Clone() *Conversation {
	clone := *c
	clone.Messages = make([]Message, len(c.Messages))
	copy(clone.Messages, c.Messages)
	return &clone
}

// =============================================================================
// CONVERSATION FILTER
// =============================================================================

// ConversationFilter narrows a conversation list read.
type ConversationFilter struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}
