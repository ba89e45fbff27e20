// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cache

import (
	"sync"
	"time"
)

// =============================================================================
// ENTRY STORE
// =============================================================================

// entry is one cached read result.
type entry struct {
	value     any
	fetchedAt time.Time
}

// entryStore is the keyed value store behind the cache layer. Writes follow
// last-resolved-wins: whichever fetch completes most recently owns the
// entry, matching how overlapping requests settle.
type entryStore struct {
	mu      sync.RWMutex
	entries map[Key]entry
}

func newEntryStore() *entryStore {
	return &entryStore{entries: make(map[Key]entry)}
}

// get returns the entry and whether it exists.
func (s *entryStore) get(key Key) (entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e, ok
}

// set stores a resolved value.
func (s *entryStore) set(key Key, value any, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, fetchedAt: fetchedAt}
}

// remove deletes one entry.
func (s *entryStore) remove(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// invalidate deletes every entry for the entity matching one of the given
// query kinds. Empty queries means all of the entity's entries.
func (s *entryStore) invalidate(ent Entity, queries ...Query) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.entries {
		if key.Entity != ent {
			continue
		}
		if len(queries) == 0 {
			delete(s.entries, key)
			continue
		}
		for _, q := range queries {
			if key.Query == q {
				delete(s.entries, key)
				break
			}
		}
	}
}

// clear drops everything.
func (s *entryStore) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[Key]entry)
}

// len reports the number of live entries.
func (s *entryStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
