// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package models

// AuditEntry is one immutable audit log record. UserRole is null when the
// action happened without a role.
type AuditEntry struct {
	Timestamp string  `json:"timestamp"`
	UserRole  *string `json:"userRole"`
	Action    string  `json:"action"`
	Details   string  `json:"details"`
}

// Session is a snapshot of the process-wide session state.
type Session struct {
	Authenticated bool    `json:"authenticated"`
	Role          *string `json:"role"`
	User          *string `json:"user"`
}

// HasRole reports whether the session role is one of roles.
func (s Session) HasRole(roles ...string) bool {
	if s.Role == nil {
		return false
	}
	for _, r := range roles {
		if *s.Role == r {
			return true
		}
	}
	return false
}

// RoleOr returns the session role, or fallback when no role is set.
func (s Session) RoleOr(fallback string) string {
	if s.Role == nil {
		return fallback
	}
	return *s.Role
}
