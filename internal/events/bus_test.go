// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package events

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/models"
	"github.com/tomtom215/iims/internal/websocket"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{Level: "info", Format: "console", Output: io.Discard})
}

type recordingSink struct {
	mu       sync.Mutex
	types    []string
	payloads [][]byte
	err      error
	received chan struct{}
}

func newRecordingSink() *recordingSink {
	return &recordingSink{received: make(chan struct{}, 16)}
}

func (s *recordingSink) BroadcastRaw(messageType string, data []byte) error {
	s.mu.Lock()
	s.types = append(s.types, messageType)
	s.payloads = append(s.payloads, append([]byte(nil), data...))
	s.mu.Unlock()
	s.received <- struct{}{}
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payloads)
}

// startBus runs a bus until the test ends.
func startBus(t *testing.T, sink Sink) *Bus {
	t.Helper()

	bus, err := NewBus(DefaultConfig(), sink)
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = bus.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		_ = bus.Close()
	})

	select {
	case <-bus.Running():
	case <-time.After(2 * time.Second):
		t.Fatal("router did not start")
	}
	return bus
}

func TestNewBus_RequiresSink(t *testing.T) {
	t.Parallel()

	if _, err := NewBus(DefaultConfig(), nil); err == nil {
		t.Error("expected error for nil sink")
	}
}

func TestBus_PublishAuditForwardsToSink(t *testing.T) {
	sink := newRecordingSink()
	bus := startBus(t, sink)

	role := models.RoleITStaff
	entry := models.AuditEntry{
		Timestamp: "2025-03-01 12:00:00",
		UserRole:  &role,
		Action:    "VERIFY",
		Details:   "Backup verification run - 3 jobs set to 'Under Investigation'",
	}

	ctx := logging.ContextWithCorrelationID(context.Background(), "abc12345")
	if err := bus.PublishAudit(ctx, entry); err != nil {
		t.Fatalf("PublishAudit: %v", err)
	}

	select {
	case <-sink.received:
	case <-time.After(2 * time.Second):
		t.Fatal("audit event was not forwarded")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if sink.types[0] != websocket.MessageTypeAudit {
		t.Errorf("message type = %q, want %q", sink.types[0], websocket.MessageTypeAudit)
	}
	var got models.AuditEntry
	if err := json.Unmarshal(sink.payloads[0], &got); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if got.Details != entry.Details || got.UserRole == nil || *got.UserRole != role {
		t.Errorf("forwarded entry = %+v, want %+v", got, entry)
	}
}

func TestBus_PublishPreservesOrder(t *testing.T) {
	sink := newRecordingSink()
	bus := startBus(t, sink)

	actions := []string{"LOGIN", "CREATE", "UPDATE", "DELETE", "LOGOUT"}
	for _, action := range actions {
		if err := bus.PublishAudit(context.Background(), models.AuditEntry{Action: action}); err != nil {
			t.Fatalf("PublishAudit(%s): %v", action, err)
		}
	}

	for range actions {
		select {
		case <-sink.received:
		case <-time.After(2 * time.Second):
			t.Fatalf("only %d of %d events forwarded", sink.count(), len(actions))
		}
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	for i, payload := range sink.payloads {
		var got models.AuditEntry
		if err := json.Unmarshal(payload, &got); err != nil {
			t.Fatalf("payload %d: %v", i, err)
		}
		if got.Action != actions[i] {
			t.Errorf("event %d action = %q, want %q", i, got.Action, actions[i])
		}
	}
}

func TestBus_ForwardAuditDropsBadPayloads(t *testing.T) {
	t.Parallel()

	sink := newRecordingSink()
	bus, err := NewBus(DefaultConfig(), sink)
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	t.Cleanup(func() { _ = bus.Close() })

	if err := bus.forwardAudit(message.NewMessage("bad", []byte("not json"))); err != nil {
		t.Errorf("undecodable payload should be acked, got %v", err)
	}
	if sink.count() != 0 {
		t.Error("undecodable payload must not reach the sink")
	}

	sink.err = errors.New("hub gone")
	if err := bus.forwardAudit(message.NewMessage("ok", []byte(`{"action":"LOGIN"}`))); err != nil {
		t.Errorf("sink failure should be acked, got %v", err)
	}
	if sink.count() != 1 {
		t.Errorf("expected one delivery attempt, got %d", sink.count())
	}
}
