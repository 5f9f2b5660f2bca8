// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

// Package main provides the IIMS HTTP server
//
// @title IIMS API
// @version 1.0
// @description IT infrastructure inventory and monitoring backend.
// @description
// @description ## Session Model
// @description
// @description The server holds a single global session. `POST /role` overrides
// @description its role for demos without authenticating; `POST /auth/login`
// @description authenticates and sets role and user. Admin logins require an MFA code.
// @description
// @description ## Roles
// @description
// @description - **Admin**: full access, including the audit log and backup verification
// @description - **IT Staff**: asset and license CRUD, audit log, backup verification
// @description - **Employee**: read-only, sees only assets assigned to them
// @description
// @description ## Rate Limiting
// @description
// @description Default: 100 requests per minute per IP for the API and 5 login
// @description attempts per 5 minutes. Exceeding either returns 429.
// @description
// @description ## Error Responses
// @description
// @description All error responses use `{"error": "message"}`.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/iims/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /api
// @schemes http https
//
// @tag.name Session
// @tag.description Global session role override
//
// @tag.name Auth
// @tag.description Login with Admin MFA, logout and status
//
// @tag.name Inventory
// @tag.description Asset and license CRUD and asset QR payloads
//
// @tag.name Monitoring
// @tag.description Hardware health, network usage, backup jobs and verification
//
// @tag.name Audit
// @tag.description Append-only audit log and its live websocket stream
//
// @tag.name Analytics
// @tag.description Dashboard metrics and assets by department
//
// @tag.name Integrations
// @tag.description Status of external system integrations
package main
