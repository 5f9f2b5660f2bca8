// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package logging

import (
	"github.com/rs/zerolog"
)

// SecurityEvent represents a security-relevant event.
// Credentials and MFA codes never appear in a SecurityEvent.
type SecurityEvent struct {
	// Event is the type of event (login_success, login_failed, logout, forbidden).
	Event string
	// Username is the submitted or session username (masked on output).
	Username string
	// Role is the role the event applies to.
	Role string
	// IPAddress is the client's IP address.
	IPAddress string
	// Success indicates if the operation was successful.
	Success bool
	// Reason is a short machine-readable failure reason.
	Reason string
}

// SecurityLogger writes authentication and authorization events.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a new security logger on the global logger.
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{
		logger: With().Str("component", "security").Logger(),
	}
}

// NewSecurityLoggerWithLogger creates a security logger with a custom zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger.With().Str("component", "security").Logger(),
	}
}

// LogEvent logs a security event. Failed events are logged at warn level.
func (l *SecurityLogger) LogEvent(event *SecurityEvent) {
	e := l.logger.Info()
	status := "success"
	if !event.Success {
		e = l.logger.Warn()
		status = "failed"
	}

	e = e.Str("event", event.Event).Str("status", status)
	if event.Username != "" {
		e = e.Str("username", SanitizeUsername(event.Username))
	}
	if event.Role != "" {
		e = e.Str("role", event.Role)
	}
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.Reason != "" {
		e = e.Str("reason", truncateString(event.Reason, 200))
	}
	e.Msg("Security event")
}

// LogLoginSuccess logs a successful login.
func (l *SecurityLogger) LogLoginSuccess(username, role, ip string) {
	l.LogEvent(&SecurityEvent{Event: "login_success", Username: username, Role: role, IPAddress: ip, Success: true})
}

// LogLoginFailure logs a rejected login.
func (l *SecurityLogger) LogLoginFailure(username, ip, reason string) {
	l.LogEvent(&SecurityEvent{Event: "login_failed", Username: username, IPAddress: ip, Reason: reason})
}

// LogLogout logs a logout of an authenticated session.
func (l *SecurityLogger) LogLogout(username, role string) {
	l.LogEvent(&SecurityEvent{Event: "logout", Username: username, Role: role, Success: true})
}

// LogForbidden logs an operation refused for the current role.
func (l *SecurityLogger) LogForbidden(role, operation, ip string) {
	l.LogEvent(&SecurityEvent{Event: "forbidden", Role: role, IPAddress: ip, Reason: operation})
}

// SanitizeUsername masks a username, keeping first 2 characters.
// Example: "itstaff" -> "it***"
func SanitizeUsername(username string) string {
	if username == "" {
		return ""
	}
	if len(username) <= 2 {
		return "***"
	}
	return username[:2] + "***"
}

// SanitizeLogValue strips control characters and truncates user-supplied
// values before they are written to a log line.
func SanitizeLogValue(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			continue
		}
		out = append(out, r)
	}
	return truncateString(string(out), 100)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
