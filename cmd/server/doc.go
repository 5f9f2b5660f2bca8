// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

/*
Package main is the entry point for the IIMS server.

IIMS is an IT infrastructure inventory and monitoring backend: role-gated
CRUD over assets and software licenses, hardware health, network and backup
monitoring feeds, backup verification, an append-only audit log and a
dashboard summary. All state is in memory and reseeded on every start.

# Application Architecture

	Root supervisor ("iims")
	├── collector-layer
	│   └── monitoring-sampler (MONITORING_HOST_ENABLED or SNMP_ENABLED)
	├── messaging-layer
	│   ├── websocket-hub
	│   └── audit-event-bus (EVENTS_ENABLED)
	└── api-layer
	    └── http-server

Initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Store: demo collections seeded relative to the start time
 4. Audit: in-memory log, optionally published on the watermill bus
 5. Authorization: embedded Casbin role policy
 6. Authentication: bcrypt credential table and the global session
 7. Monitoring: optional gopsutil host and gosnmp network collectors
 8. HTTP: chi router with CORS, rate limits and Prometheus metrics
 9. Supervisor tree: suture v4

# Configuration

	HTTP_PORT=5000                # HTTP port
	PUBLIC_URL=http://localhost:5000
	LOG_LEVEL=info                # trace, debug, info, warn, error
	LOG_FORMAT=json               # json or console
	CORS_ORIGINS=*
	RATE_LIMIT_REQS=100
	LOGIN_RATE_LIMIT_REQS=5       # failed logins per window per IP
	LOGIN_RATE_LIMIT_ALL=false    # true counts successful logins too
	MFA_CODE=123456
	ENFORCE_SEAT_LIMIT=true
	SNMP_ENABLED=false
	SNMP_TARGETS=NET-001=10.0.0.1,NET-002=10.0.0.2:1161

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains for
HTTP_SHUTDOWN_TIMEOUT, websocket clients receive a close frame and the event
bus router stops.

# Example Usage

	export LOG_FORMAT=console
	export CORS_ORIGINS=http://localhost:3000
	./iims

	curl -X POST localhost:5000/api/auth/login \
	  -d '{"username":"itstaff","password":"it123"}'
*/
package main
