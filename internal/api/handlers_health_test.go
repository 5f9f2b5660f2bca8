// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/tomtom215/iims/internal/models"
	ws "github.com/tomtom215/iims/internal/websocket"
)

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/api/ws"
}

func waitForClients(t *testing.T, hub *ws.Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.GetClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", hub.GetClientCount(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWebSocket_StreamsAuditEntries(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	server := httptest.NewServer(s.handler)
	t.Cleanup(server.Close)

	header := http.Header{"Origin": []string{"http://dashboard.test"}}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(server), header)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	waitForClients(t, s.hub, 1)

	entry := models.AuditEntry{
		Timestamp: "2025-03-01 12:00:00",
		UserRole:  models.StringPtr(models.RoleAdmin),
		Action:    "CREATE",
		Details:   "Created asset AST-100",
	}
	s.hub.BroadcastAuditEntry(entry)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}

	var msg struct {
		Type string            `json:"type"`
		Data models.AuditEntry `json:"data"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	if msg.Type != ws.MessageTypeAudit || msg.Data.Details != entry.Details {
		t.Errorf("message = %+v", msg)
	}
}

func TestWebSocket_RejectsOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header http.Header
	}{
		{"missing origin", http.Header{}},
		{"foreign origin", http.Header{"Origin": []string{"http://evil.test"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestServer(t)
			server := httptest.NewServer(s.handler)
			t.Cleanup(server.Close)

			_, resp, err := websocket.DefaultDialer.Dial(wsURL(server), tt.header)
			if err == nil {
				t.Fatal("Dial() succeeded, want rejection")
			}
			if resp == nil || resp.StatusCode != http.StatusForbidden {
				t.Errorf("response = %v, want 403", resp)
			}
			if resp != nil {
				_ = resp.Body.Close()
			}
		})
	}
}

func TestWebSocket_NoHub(t *testing.T) {
	t.Parallel()

	h := NewHandler(Dependencies{})
	rec := httptest.NewRecorder()
	h.WebSocket(rec, httptest.NewRequest(http.MethodGet, "/api/ws", nil))

	expectStatus(t, rec, http.StatusServiceUnavailable)
	expectBody(t, rec, `{"error":"WebSocket service unavailable"}`)
}
