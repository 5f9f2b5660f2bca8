// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

// Package models defines the records IIMS keeps in memory and returns over HTTP.
//
// JSON field names are camelCase and must stay byte-compatible with existing
// dashboard clients. Descriptive fields that a client may leave out or clear
// are pointers so that a JSON null round-trips as null.
//
// Pointer targets inside stored records are never mutated in place; updates
// replace the pointer. A shallow struct copy is therefore a safe snapshot.
//
// Partial updates are expressed with Optional[T] fields collected in
// AssetPatch and LicensePatch. An Optional distinguishes three states:
// key absent (keep), explicit null (clear) and a value (overwrite).
package models
