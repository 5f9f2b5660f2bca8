// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/metrics"
	ws "github.com/tomtom215/iims/internal/websocket"
)

// HealthResponse is the liveness body.
type HealthResponse struct {
	Status           string  `json:"status"`
	UptimeSeconds    float64 `json:"uptimeSeconds"`
	WebSocketClients int     `json:"websocketClients"`
}

// Health reports liveness
//
// @Summary Liveness
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.startTime).Seconds()
	metrics.AppUptime.Set(uptime)

	resp := HealthResponse{
		Status:        "ok",
		UptimeSeconds: uptime,
	}
	if h.deps.Hub != nil {
		resp.WebSocketClients = h.deps.Hub.GetClientCount()
	}
	writeJSON(w, http.StatusOK, resp)
}

// WebSocket upgrades the connection and streams audit entries as they are recorded
//
// @Summary Live audit stream
// @Description Upgrades to a WebSocket. Every appended audit entry is pushed as {"type":"audit","data":{...}}.
// @Tags Audit
// @Success 101 "Switching protocols"
// @Failure 503 {object} ErrorResponse "WebSocket service unavailable"
// @Router /ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.deps.Hub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		writeError(w, http.StatusServiceUnavailable, "WebSocket service unavailable")
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("WebSocket upgrade error")
		return
	}

	client := ws.NewClient(h.deps.Hub, conn)
	h.deps.Hub.Register <- client
	client.Start()
}
