// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

// Package backup implements backup job verification.
//
// # State Machine
//
//	Success
//	Failure ──┐
//	          ├── Verify ──> Under Investigation
//	Missed ───┘
//
// The transition is one-way; nothing moves a job out of Under Investigation.
//
// # Authorization
//
// Verification requires an authenticated session whose role may verify
// backups (Admin or IT Staff). A role set through the debug role endpoint
// without a login is not enough.
//
// # Audit
//
// Every permitted run appends exactly one VERIFY entry, including runs that
// find nothing to verify:
//
//	Backup verification run - 3 jobs set to 'Under Investigation'
package backup
