// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

// Package audit provides the append-only audit log.
//
// Every successful login, logout, inventory mutation, backup verification
// and QR payload request appends exactly one entry. Failed or forbidden
// calls never append.
//
// # Architecture
//
//	Service -> Logger.Log() -> MemoryStore (append)
//	                 |
//	                 +-> Publisher (event bus -> websocket clients)
//
// Entries are stamped with the Logger's clock using the
// "2006-01-02 15:04:05" layout and carry a nullable role:
//
//	{"timestamp":"2025-03-01 12:00:00","userRole":"Admin","action":"CREATE","details":"Created asset AST-100"}
//
// # Action Tags
//
//   - SYSTEM: process startup ("IIMS System Started", role "System")
//   - LOGIN, LOGOUT: session changes
//   - CREATE, UPDATE, DELETE: asset and license mutations
//   - VERIFY: backup verification runs
//   - QR_GENERATE: QR payload requests
//
// # Retention
//
// There is no rotation, truncation or persistence. The log lives for the
// lifetime of the process.
//
// # Thread Safety
//
// MemoryStore and Logger are safe for concurrent use.
package audit
