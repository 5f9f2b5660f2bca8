// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package audit

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/metrics"
	"github.com/tomtom215/iims/internal/models"
)

// Logger stamps and appends audit entries. Appends are synchronous so the
// entry is visible in the log before the caller's response is written.
type Logger struct {
	store     *MemoryStore
	publisher Publisher
	now       func() time.Time
	logger    zerolog.Logger
}

// Option configures a Logger.
type Option func(*Logger)

// WithClock overrides the time source used for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// WithPublisher forwards every appended entry to p.
func WithPublisher(p Publisher) Option {
	return func(l *Logger) { l.publisher = p }
}

// NewLogger creates a Logger writing to store.
func NewLogger(store *MemoryStore, opts ...Option) *Logger {
	l := &Logger{
		store:  store,
		now:    time.Now,
		logger: logging.WithComponent("audit"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Log appends {now, role, action, details} and returns the stored entry.
// A publish failure is logged and does not affect the append.
func (l *Logger) Log(ctx context.Context, action Action, details string, role *string) models.AuditEntry {
	entry := models.AuditEntry{
		Timestamp: l.now().Format(models.TimestampLayout),
		UserRole:  role,
		Action:    string(action),
		Details:   details,
	}
	l.store.Append(entry)
	metrics.RecordAuditEntry(entry.Action)

	l.logger.Debug().
		Str("action", entry.Action).
		Str("role", models.StringValue(role)).
		Str("details", logging.SanitizeLogValue(details)).
		Msg("Audit entry recorded")

	if l.publisher != nil {
		if err := l.publisher.PublishAudit(ctx, entry); err != nil {
			logging.CtxWarn(ctx).Err(err).Str("action", entry.Action).Msg("Failed to publish audit entry")
		}
	}
	return entry
}

// LogStartup records the SYSTEM entry written once at process start.
func (l *Logger) LogStartup(ctx context.Context) models.AuditEntry {
	return l.Log(ctx, ActionSystem, StartupDetails, models.StringPtr(models.RoleSystem))
}

// Entries returns the full log in insertion order.
func (l *Logger) Entries() []models.AuditEntry {
	return l.store.List()
}
