// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

// Package logging provides centralized zerolog-based logging for IIMS.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Msg("Server starting")
//	logging.Ctx(ctx).Warn().Str("role", role).Msg("Forbidden")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// Always terminate log chains with .Msg() or .Send(). Use structured fields
// instead of string formatting.
//
// # Security events
//
// SecurityLogger records login, logout and forbidden-operation events with
// masked usernames. Passwords and MFA codes are never passed to it.
//
// # slog interop
//
// SlogHandler lets slog-only libraries (sutureslog) write through zerolog.
package logging
