// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/iims/internal/models"
)

var fixedNow = time.Date(2025, 3, 1, 12, 30, 15, 0, time.UTC)

type recordingPublisher struct {
	mu      sync.Mutex
	entries []models.AuditEntry
	err     error
}

func (p *recordingPublisher) PublishAudit(_ context.Context, entry models.AuditEntry) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, entry)
	return p.err
}

func newTestLogger(t *testing.T, opts ...Option) (*Logger, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewLogger(store, opts...), store
}

func TestLogger_Log(t *testing.T) {
	t.Parallel()

	logger, store := newTestLogger(t)
	entry := logger.Log(context.Background(), ActionCreate, "Created asset AST-100", models.StringPtr(models.RoleAdmin))

	if entry.Timestamp != "2025-03-01 12:30:15" {
		t.Errorf("timestamp = %q", entry.Timestamp)
	}
	if entry.Action != "CREATE" || entry.Details != "Created asset AST-100" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if store.Len() != 1 {
		t.Fatalf("store.Len() = %d, want 1", store.Len())
	}
	if got := store.List()[0]; models.StringValue(got.UserRole) != "Admin" {
		t.Errorf("stored role = %v", got.UserRole)
	}
}

func TestLogger_NullRole(t *testing.T) {
	t.Parallel()

	logger, _ := newTestLogger(t)
	entry := logger.Log(context.Background(), ActionLogout, "User x logged out", nil)

	if entry.UserRole != nil {
		t.Errorf("role should stay null, got %q", *entry.UserRole)
	}
}

func TestLogger_LogStartup(t *testing.T) {
	t.Parallel()

	logger, store := newTestLogger(t)
	logger.LogStartup(context.Background())

	entries := logger.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].Action != "SYSTEM" || entries[0].Details != "IIMS System Started" || models.StringValue(entries[0].UserRole) != "System" {
		t.Errorf("unexpected startup entry: %+v", entries[0])
	}
	if store.Count(ActionSystem) != 1 {
		t.Error("Count(SYSTEM) should be 1")
	}
}

func TestLogger_Publisher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"publish succeeds", nil},
		{"publish fails but entry is kept", errors.New("bus closed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pub := &recordingPublisher{err: tt.err}
			logger, store := newTestLogger(t, WithPublisher(pub))

			logger.Log(context.Background(), ActionVerify, "Backup verification run - 2 jobs set to 'Under Investigation'", nil)

			if store.Len() != 1 {
				t.Errorf("store.Len() = %d, want 1", store.Len())
			}
			if len(pub.entries) != 1 || pub.entries[0].Action != "VERIFY" {
				t.Errorf("publisher saw %+v", pub.entries)
			}
		})
	}
}

func TestMemoryStore_OrderAndCopy(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	for _, a := range []Action{ActionSystem, ActionLogin, ActionCreate, ActionLogin} {
		store.Append(models.AuditEntry{Action: string(a)})
	}

	list := store.List()
	want := []string{"SYSTEM", "LOGIN", "CREATE", "LOGIN"}
	for i, w := range want {
		if list[i].Action != w {
			t.Errorf("entry %d = %s, want %s", i, list[i].Action, w)
		}
	}

	list[0].Action = "CHANGED"
	if store.List()[0].Action != "SYSTEM" {
		t.Error("List must return a copy")
	}
	if store.Count(ActionLogin) != 2 {
		t.Errorf("Count(LOGIN) = %d, want 2", store.Count(ActionLogin))
	}
}

func TestMemoryStore_ConcurrentAppend(t *testing.T) {
	t.Parallel()

	logger, store := newTestLogger(t)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Log(context.Background(), ActionQRGenerate, "QR code generated for asset AST-001", nil)
		}()
	}
	wg.Wait()

	if store.Len() != 100 {
		t.Errorf("store.Len() = %d, want 100", store.Len())
	}
}
