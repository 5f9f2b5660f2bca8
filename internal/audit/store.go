// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package audit

import (
	"sync"

	"github.com/tomtom215/iims/internal/models"
)

// MemoryStore is the append-only audit log. Entries are never modified or
// removed and the log grows for the lifetime of the process.
type MemoryStore struct {
	entries []models.AuditEntry
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty audit store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make([]models.AuditEntry, 0, 64)}
}

// Append adds an entry to the end of the log.
func (s *MemoryStore) Append(entry models.AuditEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// List returns a copy of all entries in insertion order.
func (s *MemoryStore) List() []models.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AuditEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Count returns the number of entries tagged with action.
func (s *MemoryStore) Count(action Action) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for i := range s.entries {
		if s.entries[i].Action == string(action) {
			n++
		}
	}
	return n
}
