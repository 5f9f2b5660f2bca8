// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package auth

import (
	"sync"

	"github.com/tomtom215/iims/internal/models"
)

// SessionHolder owns the single process-wide session.
// Readers take a Snapshot and never hold a reference to the live state.
type SessionHolder struct {
	mu            sync.RWMutex
	authenticated bool
	role          *string
	user          *string
}

// NewSessionHolder returns a cleared session.
func NewSessionHolder() *SessionHolder {
	return &SessionHolder{}
}

// Snapshot returns a copy of the current session.
func (h *SessionHolder) Snapshot() models.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return models.Session{
		Authenticated: h.authenticated,
		Role:          copyString(h.role),
		User:          copyString(h.user),
	}
}

// Establish records a successful login.
func (h *SessionHolder) Establish(role, user string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.authenticated = true
	h.role = &role
	h.user = &user
}

// SetRole overrides only the role. Used by the debug role endpoint.
func (h *SessionHolder) SetRole(role string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.role = &role
}

// Clear resets the session and returns the state it replaced.
func (h *SessionHolder) Clear() models.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	prev := models.Session{Authenticated: h.authenticated, Role: h.role, User: h.user}
	h.authenticated = false
	h.role = nil
	h.user = nil
	return prev
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
