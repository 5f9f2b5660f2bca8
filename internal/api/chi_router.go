// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/iims/internal/middleware"
)

// APIPrefix is the mount point of every API route.
const APIPrefix = "/api"

// Router wires the handlers into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware factory uses the defaults.
func NewRouter(handler *Handler, chiMiddleware *ChiMiddleware) *Router {
	if chiMiddleware == nil {
		chiMiddleware = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: chiMiddleware}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)         // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)         // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)      // Recover from panics
	r.Use(router.chiMiddleware.CORS())  // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics) // Labelled by route pattern

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// ========================
	// Operational Endpoints
	// ========================
	// Not rate limited so probes and scrapers are never throttled.
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route(APIPrefix, func(r chi.Router) {
		r.Use(APISecurityHeaders())

		// Long-lived connection; the upgrade is not counted against the API limit.
		r.Get("/ws", h.WebSocket)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(chimiddleware.Compress(5, "application/json"))

			// Session
			r.Get("/role", h.GetRole)
			r.Post("/role", h.SetRole)

			// Auth
			r.With(router.chiMiddleware.RateLimitLogin()).Post("/auth/login", h.Login)
			r.Post("/auth/logout", h.Logout)
			r.Get("/auth/status", h.AuthStatus)

			// Inventory
			r.Get("/assets", h.ListAssets)
			r.Post("/assets", h.MutateAsset)
			r.Get("/assets/{id}/qr", h.AssetQR)
			r.Get("/licenses", h.ListLicenses)
			r.Post("/licenses", h.MutateLicense)

			// Monitoring
			r.Get("/monitoring/hardware", h.HardwareHealth)
			r.Get("/monitoring/network", h.NetworkUsage)
			r.Get("/monitoring/backup", h.BackupStatus)
			r.Post("/monitoring/backup/verify", h.VerifyBackups)

			// Audit
			r.Get("/audit-log", h.AuditLog)

			// Analytics and integrations
			r.Get("/dashboard/metrics", h.DashboardMetrics)
			r.Get("/analytics/assets-by-department", h.AssetsByDepartment)
			r.Get("/integrations/status", h.IntegrationStatus)
		})
	})

	return r
}
