// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

// Package inventory implements create, update, delete and list over the
// asset and license collections.
//
// Mutations require a role the authorizer allows to write the inventory
// (Admin or IT Staff). Each successful mutation appends one audit entry;
// failed and forbidden calls never do and leave the store unchanged.
//
// Updates are partial: an absent key keeps the stored value and an explicit
// null clears it. Ids are identity and are never patched. Lookups are linear
// scans that resolve to the first record in storage order.
package inventory
