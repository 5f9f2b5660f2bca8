// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

/*
Package api provides the HTTP surface of IIMS using the chi router.

Routes are mounted under /api:

	GET|POST /role                          session role override
	GET      /dashboard/metrics             dashboard counters
	GET|POST /assets                        list, or create/update/delete by action
	GET      /assets/{id}/qr                QR payload for one asset
	GET|POST /licenses                      list, or create/update/delete by action
	GET      /monitoring/hardware           hardware health samples
	GET      /monitoring/network            network samples
	GET      /monitoring/backup             backup jobs
	POST     /monitoring/backup/verify      backup verification (Admin/IT Staff)
	GET      /audit-log                     audit log (Admin/IT Staff)
	POST     /auth/login                    password login with Admin MFA
	POST     /auth/logout                   clear the session
	GET      /auth/status                   session status
	GET      /integrations/status           integration status map
	GET      /analytics/assets-by-department asset counts per department
	GET      /ws                            live audit stream

Outside the prefix, /health, /metrics and /swagger/* are served without rate
limiting.

Error responses have the shape {"error": "message"}. Login responses always
carry a success flag and, on failure, a message.

Middleware order: request id, real IP, panic recovery, CORS and Prometheus
instrumentation globally; security headers on /api; the per-IP rate limiter
and gzip compression on every /api route except the websocket; a stricter
limiter on login.
*/
package api
