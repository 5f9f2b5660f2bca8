// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/iims/internal/analytics"
	"github.com/tomtom215/iims/internal/auth"
	"github.com/tomtom215/iims/internal/authz"
	"github.com/tomtom215/iims/internal/backup"
	"github.com/tomtom215/iims/internal/integrations"
	"github.com/tomtom215/iims/internal/inventory"
	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/models"
	"github.com/tomtom215/iims/internal/monitoring"
	ws "github.com/tomtom215/iims/internal/websocket"
)

// MonitoringService serves the monitoring collections and can refresh live
// collectors ahead of a dashboard computation.
type MonitoringService interface {
	monitoring.Provider
	Refresh(ctx context.Context)
}

// AuditReader exposes the audit log for the read endpoint.
type AuditReader interface {
	Entries() []models.AuditEntry
}

// Dependencies are the services the handlers delegate to.
type Dependencies struct {
	Auth         *auth.Service
	Authz        *authz.Authorizer
	Inventory    *inventory.Service
	Analytics    *analytics.Service
	Backup       *backup.Verifier
	Monitoring   MonitoringService
	Integrations integrations.Provider
	Audit        AuditReader
	Hub          *ws.Hub

	// AllowedOrigins are the origins accepted for websocket upgrades.
	AllowedOrigins []string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_auth.go: role override, login, logout and status
//   - handlers_inventory.go: assets, licenses and QR payloads
//   - handlers_monitoring.go: monitoring, backup verification, audit log,
//     dashboard, analytics and integrations
//   - handlers_health.go: liveness and the websocket upgrade
type Handler struct {
	deps      Dependencies
	startTime time.Time
	security  *logging.SecurityLogger
}

// NewHandler creates a new API handler.
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		deps:      deps,
		startTime: time.Now(),
		security:  logging.NewSecurityLogger(),
	}
}

// session returns the current process-wide session.
func (h *Handler) session() models.Session {
	return h.deps.Auth.Status()
}

// forbidden logs the denial and answers 403.
func (h *Handler) forbidden(w http.ResponseWriter, r *http.Request, session models.Session, operation string) {
	h.security.LogForbidden(session.RoleOr(""), operation, clientIP(r))
	writeError(w, http.StatusForbidden, msgForbidden)
}

func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins. Browsers
// always send Origin, so a missing header is rejected.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	for _, allowed := range h.deps.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	logging.Warn().Str("origin", logging.SanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}
