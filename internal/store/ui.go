// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides the client-side state containers.
package store

import (
	"sync"
	"time"

	"github.com/leptinchef/leptinchef-tui/internal/model"
)

// uiSnapshotName is the snapshot file name for the UI container.
const uiSnapshotName = "ui"

// DefaultNotificationTTL is how long non-error notifications stay visible
// before automatic removal. Error notifications persist until dismissed.
const DefaultNotificationTTL = 5000 * time.Millisecond

// =============================================================================
// MODAL TYPES
// =============================================================================

// ModalType identifies what a modal presents.
type ModalType string

const (
	ModalConfirm ModalType = "confirm"
	ModalAlert   ModalType = "alert"
	ModalForm    ModalType = "form"
	ModalRecipe  ModalType = "recipe"
	ModalProfile ModalType = "profile"
)

// Modal is one entry in the modal stack. Showing a modal is pure mechanism;
// rendering is the presentation layer's concern.
type Modal struct {
	ID      string    `json:"id"`
	Type    ModalType `json:"type"`
	Title   string    `json:"title"`
	Content string    `json:"content,omitempty"`

	// Callbacks for confirm-style modals; may be nil.
	OnConfirm func() `json:"-"`
	OnCancel  func() `json:"-"`
}

// ModalInput carries the caller-supplied modal fields; the id is assigned
// by ShowModal.
type ModalInput struct {
	Type      ModalType
	Title     string
	Content   string
	OnConfirm func()
	OnCancel  func()
}

// =============================================================================
// NOTIFICATION TYPES
// =============================================================================

// NotificationType grades a notification's severity.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// Notification is one entry in the notification queue.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
}

// NotificationInput carries the caller-supplied notification fields; id and
// timestamp are assigned by ShowNotification.
type NotificationInput struct {
	Type    NotificationType
	Message string
}

// =============================================================================
// UI STORE
// =============================================================================

// UIStore holds ephemeral interaction state not tied to any single view:
// the modal stack, named loading flags, theme preference, notification
// queue, and sidebar collapse flag.
type UIStore struct {
	mu sync.Mutex

	// Persisted across restarts
	theme            model.Theme
	sidebarCollapsed bool

	// Always transient
	modals        []Modal
	loading       map[string]bool
	notifications []Notification

	// Auto-dismiss timers keyed by notification id. Cancelling on manual
	// dismissal avoids the dismiss-then-phantom-redismiss race; a timer
	// that fires anyway finds the id absent and removes nothing.
	timers          map[string]*time.Timer
	notificationTTL time.Duration

	// onAutoDismiss, when set, runs after a timer-driven removal so the
	// presentation loop can repaint. Called outside the lock.
	onAutoDismiss func()

	// Collaborators
	ids model.IDGenerator
	now func() time.Time
	dir *Dir

	lastSaveErr error
}

// uiSnapshot is the persisted subset of the UI container.
type uiSnapshot struct {
	Theme            model.Theme `json:"theme"`
	SidebarCollapsed bool        `json:"sidebar_collapsed"`
}

// NewUIStore creates a UI container, restoring theme and sidebar state from
// the snapshot when dir is non-nil. Modals, notifications, and loading
// flags always start empty.
func NewUIStore(dir *Dir, ids model.IDGenerator) *UIStore {
	s := &UIStore{
		theme:           model.ThemeAuto,
		modals:          make([]Modal, 0),
		loading:         make(map[string]bool),
		notifications:   make([]Notification, 0),
		timers:          make(map[string]*time.Timer),
		notificationTTL: DefaultNotificationTTL,
		ids:             ids,
		now:             time.Now,
		dir:             dir,
	}

	if dir != nil {
		var snap uiSnapshot
		if err := dir.Load(uiSnapshotName, &snap); err == nil {
			if snap.Theme.Valid() {
				s.theme = snap.Theme
			}
			s.sidebarCollapsed = snap.SidebarCollapsed
		}
	}

	return s
}

// SetClock overrides the time source. Intended for tests.
func (s *UIStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetNotificationTTL overrides the auto-dismiss delay. Intended for tests.
func (s *UIStore) SetNotificationTTL(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notificationTTL = d
}

// SetAutoDismissFunc registers a callback invoked after a timer-driven
// notification removal.
func (s *UIStore) SetAutoDismissFunc(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onAutoDismiss = fn
}

// =============================================================================
// MODALS
// =============================================================================

// ShowModal assigns a unique id, appends the modal to the stack, and
// returns the id.
func (s *UIStore) ShowModal(in ModalInput) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	modal := Modal{
		ID:        s.ids.NewID("ui"),
		Type:      in.Type,
		Title:     in.Title,
		Content:   in.Content,
		OnConfirm: in.OnConfirm,
		OnCancel:  in.OnCancel,
	}
	s.modals = append(s.modals, modal)
	return modal.ID
}

// HideModal removes the matching modal. No-op if absent.
func (s *UIStore) HideModal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.modals {
		if s.modals[i].ID == id {
			s.modals = append(s.modals[:i], s.modals[i+1:]...)
			return
		}
	}
}

// HideAllModals empties the modal stack.
func (s *UIStore) HideAllModals() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modals = make([]Modal, 0)
}

// Modals returns a copy of the modal stack, bottom first.
func (s *UIStore) Modals() []Modal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Modal, len(s.modals))
	copy(out, s.modals)
	return out
}

// TopModal returns the top of the modal stack, or nil when empty.
func (s *UIStore) TopModal() *Modal {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.modals) == 0 {
		return nil
	}
	top := s.modals[len(s.modals)-1]
	return &top
}

// =============================================================================
// LOADING FLAGS
// =============================================================================

// SetLoading upserts the named loading flag. Independent keys let multiple
// in-flight operations track loading state without clobbering each other.
func (s *UIStore) SetLoading(key string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading[key] = loading
}

// IsLoading returns the named loading flag (false when never set).
func (s *UIStore) IsLoading(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading[key]
}

// ClearAllLoading empties the loading map.
func (s *UIStore) ClearAllLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = make(map[string]bool)
}

// =============================================================================
// THEME
// =============================================================================

// SetTheme replaces the theme preference.
func (s *UIStore) SetTheme(theme model.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = theme
	s.saveLocked()
}

// Theme returns the current theme preference.
func (s *UIStore) Theme() model.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// =============================================================================
// NOTIFICATIONS
// =============================================================================

// ShowNotification assigns an id and timestamp, appends the notification,
// and returns the id. Every type except error is scheduled for automatic
// removal after the TTL; error notifications persist until explicitly
// dismissed.
func (s *UIStore) ShowNotification(in NotificationInput) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := Notification{
		ID:        s.ids.NewID("ui"),
		Type:      in.Type,
		Message:   in.Message,
		Timestamp: s.now(),
	}
	s.notifications = append(s.notifications, n)

	if n.Type != NotificationError {
		id := n.ID
		s.timers[id] = time.AfterFunc(s.notificationTTL, func() {
			s.autoDismiss(id)
		})
	}

	return n.ID
}

// HideNotification removes the matching notification and cancels its
// auto-dismiss timer. No-op if absent.
func (s *UIStore) HideNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeNotificationLocked(id)
}

// ClearAllNotifications empties the queue and cancels all timers.
func (s *UIStore) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.notifications = make([]Notification, 0)
}

// Notifications returns a copy of the queue in display order.
func (s *UIStore) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// autoDismiss is the timer callback. A notification already removed by hand
// is a safe no-op here.
func (s *UIStore) autoDismiss(id string) {
	s.mu.Lock()
	s.removeNotificationLocked(id)
	fn := s.onAutoDismiss
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// removeNotificationLocked removes one notification and stops its timer
// (must hold lock).
func (s *UIStore) removeNotificationLocked(id string) {
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// =============================================================================
// SIDEBAR
// =============================================================================

// ToggleSidebar flips the collapse flag.
func (s *UIStore) ToggleSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sidebarCollapsed = !s.sidebarCollapsed
	s.saveLocked()
}

// SetSidebarCollapsed sets the collapse flag directly.
func (s *UIStore) SetSidebarCollapsed(collapsed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sidebarCollapsed = collapsed
	s.saveLocked()
}

// SidebarCollapsed returns the collapse flag.
func (s *UIStore) SidebarCollapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarCollapsed
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// Flush re-writes the snapshot and returns the persistence error, if any.
func (s *UIStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked()
	return s.lastSaveErr
}

// saveLocked persists the snapshot subset (must hold lock).
func (s *UIStore) saveLocked() {
	if s.dir == nil {
		return
	}
	s.lastSaveErr = s.dir.Save(uiSnapshotName, uiSnapshot{
		Theme:            s.theme,
		SidebarCollapsed: s.sidebarCollapsed,
	})
}
