// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Inventory Metrics
	InventoryOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_operations_total",
			Help: "Total number of inventory mutations by collection, operation and result",
		},
		[]string{"collection", "operation", "result"}, // result: "success", "forbidden", "not_found", "duplicate", "invalid"
	)

	InventoryRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "inventory_records",
			Help: "Current number of records per collection",
		},
		[]string{"collection"},
	)

	// Audit Metrics
	AuditEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_entries_total",
			Help: "Total number of audit log entries appended",
		},
		[]string{"action"},
	)

	// Authentication Metrics
	AuthLoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"}, // "success", "invalid_credentials", "mfa_required", "unsupported_method"
	)

	AuthzDenials = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_denials_total",
			Help: "Total number of operations refused for the current role",
		},
		[]string{"operation"},
	)

	AuthzCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_cache_lookups_total",
			Help: "Authorization decision cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss", "expired"
	)

	// Backup Verification Metrics
	BackupVerificationRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "backup_verification_runs_total",
			Help: "Total number of backup verification runs",
		},
	)

	BackupJobsTransitioned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "backup_jobs_transitioned_total",
			Help: "Total number of backup jobs moved to Under Investigation",
		},
	)

	// Live Collector Metrics
	CollectorPolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collector_polls_total",
			Help: "Total number of live collector polls by result",
		},
		[]string{"collector", "result"}, // result: "success", "failure", "rejected", "throttled"
	)

	CollectorPollDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "collector_poll_duration_seconds",
			Help:    "Duration of live collector polls in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"collector"},
	)

	// Event Bus Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of messages published on the event bus",
		},
		[]string{"topic"},
	)

	EventsPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_publish_errors_total",
			Help: "Total number of failed event bus publishes",
		},
		[]string{"topic"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections_active",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSMessagesReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_received_total",
			Help: "Total number of WebSocket messages received",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordInventoryOperation records the outcome of an inventory mutation
func RecordInventoryOperation(collection, operation, result string) {
	InventoryOperations.WithLabelValues(collection, operation, result).Inc()
}

// SetInventoryRecords updates the record count gauge for a collection
func SetInventoryRecords(collection string, count int) {
	InventoryRecords.WithLabelValues(collection).Set(float64(count))
}

// RecordAuditEntry records an appended audit entry
func RecordAuditEntry(action string) {
	AuditEntriesTotal.WithLabelValues(action).Inc()
}

// RecordLoginAttempt records a login attempt and its result
func RecordLoginAttempt(result string) {
	AuthLoginAttempts.WithLabelValues(result).Inc()
}

// RecordAuthzDenial records an operation refused for the current role
func RecordAuthzDenial(operation string) {
	AuthzDenials.WithLabelValues(operation).Inc()
}

// RecordAuthzCacheLookup records one decision cache lookup
func RecordAuthzCacheLookup(result string) {
	AuthzCacheLookups.WithLabelValues(result).Inc()
}

// RecordBackupVerification records a verification run and how many jobs it moved
func RecordBackupVerification(transitioned int) {
	BackupVerificationRuns.Inc()
	BackupJobsTransitioned.Add(float64(transitioned))
}

// RecordCollectorPoll records a live collector poll
func RecordCollectorPoll(collector, result string, duration time.Duration) {
	CollectorPolls.WithLabelValues(collector, result).Inc()
	if duration > 0 {
		CollectorPollDuration.WithLabelValues(collector).Observe(duration.Seconds())
	}
}

// RecordEventPublish records a publish on the event bus
func RecordEventPublish(topic string, err error) {
	if err != nil {
		EventsPublishErrors.WithLabelValues(topic).Inc()
		return
	}
	EventsPublished.WithLabelValues(topic).Inc()
}
