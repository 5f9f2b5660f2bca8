// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Inventory Metrics:
  - inventory_operations_total: Asset and license mutations (counter)
    Labels: collection, operation, result
  - inventory_records: Records per collection (gauge)
    Labels: collection

Security Metrics:
  - audit_entries_total: Audit log appends (counter)
    Labels: action
  - auth_login_attempts_total: Login attempts (counter)
    Labels: result
  - authz_denials_total: Role-gated operations refused (counter)
    Labels: operation

Monitoring Metrics:
  - backup_verification_runs_total, backup_jobs_transitioned_total (counters)
  - collector_polls_total: Live host and SNMP polls (counter)
    Labels: collector, result
  - collector_poll_duration_seconds: Poll latency (histogram)
    Labels: collector
  - circuit_breaker_state, circuit_breaker_requests_total,
    circuit_breaker_consecutive_failures, circuit_breaker_state_transitions_total
    Labels: name

Event Metrics:
  - events_published_total, events_publish_errors_total (counters)
    Labels: topic
  - websocket_connections_active (gauge)
  - websocket_messages_sent_total, websocket_messages_received_total (counters)
  - websocket_errors_total (counter)
    Labels: error_type

# Usage

	start := time.Now()
	// ... handle request ...
	metrics.RecordAPIRequest(r.Method, pattern, strconv.Itoa(status), time.Since(start))

	metrics.RecordInventoryOperation("assets", "create", "success")

# Thread Safety

All collectors are safe for concurrent use.
*/
package metrics
