// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package api

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/metrics"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	// Rate limiting configuration
	RateLimitRequests      int
	RateLimitWindow        time.Duration
	LoginRateLimitRequests int
	LoginRateLimitWindow   time.Duration
	RateLimitDisabled      bool
	RateLimitKeyFunc       httprate.KeyFunc

	// LoginRateLimitAllAttempts counts successful logins as well as
	// rejected ones against the login limit.
	LoginRateLimitAllAttempts bool
}

// DefaultChiMiddlewareConfig returns a secure default configuration.
// CORS origins default to empty, requiring explicit configuration.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins:   []string{},
		CORSAllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		CORSExposedHeaders:   []string{"X-Request-ID"},
		CORSAllowCredentials: false,
		CORSMaxAge:           86400,

		RateLimitRequests:      100,
		RateLimitWindow:        time.Minute,
		LoginRateLimitRequests: 5,
		LoginRateLimitWindow:   5 * time.Minute,
	}
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		ExposedHeaders:   config.CORSExposedHeaders,
		AllowCredentials: config.CORSAllowCredentials,
		MaxAge:           config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// NewChiMiddlewareFromSecurity builds the middleware factory from the
// security section of the configuration.
func NewChiMiddlewareFromSecurity(corsOrigins []string, apiReqs int, apiWindow time.Duration, loginReqs int, loginWindow time.Duration, loginAll, disabled bool) *ChiMiddleware {
	config := DefaultChiMiddlewareConfig()
	config.CORSAllowedOrigins = corsOrigins
	config.RateLimitDisabled = disabled
	config.LoginRateLimitAllAttempts = loginAll
	if apiReqs > 0 {
		config.RateLimitRequests = apiReqs
	}
	if apiWindow > 0 {
		config.RateLimitWindow = apiWindow
	}
	if loginReqs > 0 {
		config.LoginRateLimitRequests = loginReqs
	}
	if loginWindow > 0 {
		config.LoginRateLimitWindow = loginWindow
	}
	return NewChiMiddleware(config)
}

// CORS returns a Chi-compatible CORS middleware using go-chi/cors.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns the default per-IP limiter for the API group.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.limit("api", m.config.RateLimitRequests, m.config.RateLimitWindow)
}

// RateLimitLogin returns the per-IP limiter for login attempts. Only
// rejected credentials count unless LoginRateLimitAllAttempts is set.
func (m *ChiMiddleware) RateLimitLogin() func(http.Handler) http.Handler {
	if m.config.LoginRateLimitAllAttempts {
		return m.limit("login", m.config.LoginRateLimitRequests, m.config.LoginRateLimitWindow)
	}
	return m.limitFailures("login", m.config.LoginRateLimitRequests, m.config.LoginRateLimitWindow)
}

func (m *ChiMiddleware) limit(name string, requests int, window time.Duration) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return passThrough
	}

	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(m.keyFunc()),
		httprate.WithLimitHandler(rateLimitExceeded(name)),
	)
}

// limitFailures blocks a client once it has received the configured number
// of 401 responses inside the sliding window. Other responses are free.
func (m *ChiMiddleware) limitFailures(name string, requests int, window time.Duration) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return passThrough
	}

	keyFunc := m.keyFunc()
	limiter := httprate.NewRateLimiter(requests, window, httprate.WithKeyFuncs(keyFunc))
	exceeded := rateLimitExceeded(name)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, err := keyFunc(r)
			if err != nil {
				writeError(w, http.StatusPreconditionRequired, "Unable to identify client")
				return
			}

			_, rate, err := limiter.Status(key)
			if err == nil && rate >= float64(requests) {
				exceeded(w, r)
				return
			}

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			if ww.Status() == http.StatusUnauthorized {
				currentWindow := time.Now().UTC().Truncate(window)
				if err := limiter.Counter().IncrementBy(key, currentWindow, 1); err != nil {
					logging.CtxWarn(r.Context()).Err(err).Str("limiter", name).Msg("Failed to record rejected attempt")
				}
			}
		})
	}
}

func (m *ChiMiddleware) keyFunc() httprate.KeyFunc {
	if m.config.RateLimitKeyFunc != nil {
		return m.config.RateLimitKeyFunc
	}
	return httprate.KeyByIP
}

func passThrough(next http.Handler) http.Handler {
	return next
}

// rateLimitExceeded answers throttled requests with the API's JSON error shape.
func rateLimitExceeded(limiter string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.APIRateLimitHits.WithLabelValues(limiter).Inc()
		logging.CtxWarn(r.Context()).
			Str("limiter", limiter).
			Str("path", logging.SanitizeLogValue(r.URL.Path)).
			Msg("Rate limit exceeded")
		writeError(w, http.StatusTooManyRequests, "Too many requests")
	}
}

// APISecurityHeaders returns a middleware that adds security headers to API responses.
//
// Headers added:
//   - X-Content-Type-Options: nosniff
//   - X-Frame-Options: DENY
//   - Cache-Control: no-store
//   - Referrer-Policy: strict-origin-when-cross-origin
//
// HSTS is added when the request arrived over HTTPS.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
