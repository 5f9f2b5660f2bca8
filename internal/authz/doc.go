// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

/*
Package authz provides role-based authorization using Casbin.

The model and policy are embedded in the binary:

	p, IT Staff, inventory/*, write
	p, IT Staff, audit, read
	p, IT Staff, backup, verify
	g, Admin, IT Staff

Admin inherits every IT Staff permission. Employee and unknown roles have
no permissions, and a session without a role is always denied.

Usage:

	enforcer, err := authz.NewEnforcer(nil)
	if err != nil {
	    return err
	}
	defer enforcer.Close()

	az := authz.NewAuthorizer(enforcer)
	if !az.CanMutate(session.Role, authz.ObjectAssets) {
	    return inventory.ErrForbidden
	}

Decisions are cached per (role, object, action) for CacheTTL. The policy is
static, so entries are never invalidated, only expired on lookup.
*/
package authz
