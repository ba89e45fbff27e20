// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides the client-side state containers.
//
// Three containers exist, each owning its fields exclusively:
//
//   - ChatStore: the active conversation transcript and transient request
//     state (loading flag, error message).
//   - UIStore: ephemeral interaction state — modal stack, named loading
//     flags, theme, notification queue, sidebar collapse.
//   - UserStore: the current user's profile, preferences, and the
//     authenticated flag.
//
// Containers are constructed explicitly and injected into the presentation
// layer; there are no package-level singletons. Cross-container coordination
// happens only through explicit calls, never shared references.
//
// Each container persists a declared subset of its fields as a JSON snapshot
// (chat.json, ui.json, user.json) written atomically on every mutation of a
// persisted field and loaded once at construction. Fields outside the
// snapshot always reset to defaults on restart.
package store
