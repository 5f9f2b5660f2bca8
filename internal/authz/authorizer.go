// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package authz

import (
	"github.com/tomtom215/iims/internal/logging"
)

// Objects and actions used in the policy.
const (
	ObjectAssets   = "inventory/assets"
	ObjectLicenses = "inventory/licenses"
	ObjectAudit    = "audit"
	ObjectBackup   = "backup"

	ActionWrite  = "write"
	ActionRead   = "read"
	ActionVerify = "verify"
)

// Authorizer answers the role checks the services need.
// A nil or empty role is always denied.
type Authorizer struct {
	enforcer *Enforcer
}

// NewAuthorizer wraps an Enforcer.
func NewAuthorizer(enforcer *Enforcer) *Authorizer {
	return &Authorizer{enforcer: enforcer}
}

// Allowed reports whether role may perform action on object.
// Enforcement errors deny.
func (a *Authorizer) Allowed(role *string, object, action string) bool {
	if role == nil || *role == "" {
		return false
	}
	allowed, err := a.enforcer.Enforce(*role, object, action)
	if err != nil {
		logging.Error().Err(err).
			Str("role", *role).
			Str("object", object).
			Str("action", action).
			Msg("Authorization check failed")
		return false
	}
	return allowed
}

// CanMutate reports whether role may create, update or delete records in
// the given inventory object (ObjectAssets or ObjectLicenses).
func (a *Authorizer) CanMutate(role *string, object string) bool {
	return a.Allowed(role, object, ActionWrite)
}

// CanReadAudit reports whether role may read the audit log.
func (a *Authorizer) CanReadAudit(role *string) bool {
	return a.Allowed(role, ObjectAudit, ActionRead)
}

// CanVerifyBackups reports whether role may run backup verification.
// The session must also be authenticated; that check belongs to the caller.
func (a *Authorizer) CanVerifyBackups(role *string) bool {
	return a.Allowed(role, ObjectBackup, ActionVerify)
}
