// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package audit

import (
	"context"

	"github.com/tomtom215/iims/internal/models"
)

// Action is the tag recorded in an audit entry.
type Action string

const (
	ActionSystem     Action = "SYSTEM"
	ActionLogin      Action = "LOGIN"
	ActionLogout     Action = "LOGOUT"
	ActionCreate     Action = "CREATE"
	ActionUpdate     Action = "UPDATE"
	ActionDelete     Action = "DELETE"
	ActionVerify     Action = "VERIFY"
	ActionQRGenerate Action = "QR_GENERATE"
)

// StartupDetails is the detail text of the entry recorded at process start.
const StartupDetails = "IIMS System Started"

// Recorder is the subset of Logger used by the services that append entries.
type Recorder interface {
	Log(ctx context.Context, action Action, details string, role *string) models.AuditEntry
}

// Publisher receives every appended entry, typically the event bus.
type Publisher interface {
	PublishAudit(ctx context.Context, entry models.AuditEntry) error
}
