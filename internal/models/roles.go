// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package models

// Role constants define the closed set of login roles.
// These align with the Casbin policy in internal/authz/policy.csv.
const (
	// RoleAdmin has full access and must present a second factor at login.
	RoleAdmin = "Admin"

	// RoleITStaff may mutate inventory, read the audit log and verify backups.
	RoleITStaff = "IT Staff"

	// RoleEmployee has read-only access and sees only their own assets.
	RoleEmployee = "Employee"

	// RoleSystem tags audit entries produced without a session.
	RoleSystem = "System"
)

// ValidRoles contains all login roles.
var ValidRoles = []string{RoleAdmin, RoleITStaff, RoleEmployee}

// IsValidRole checks if a role name is one of the login roles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
