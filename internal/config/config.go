// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in values for the demo deployment
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Inventory  InventoryConfig  `koanf:"inventory"`
	Monitoring MonitoringConfig `koanf:"monitoring"`
	Events     EventsConfig     `koanf:"events"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// PublicURL is the externally visible base URL, used for QR payload links.
	PublicURL string `koanf:"public_url"`
}

// SecurityConfig holds authentication, authorization and rate limit settings.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`

	LoginRateLimitReqs   int           `koanf:"login_rate_limit_reqs"`
	LoginRateLimitWindow time.Duration `koanf:"login_rate_limit_window"`
	RateLimitReqs        int           `koanf:"rate_limit_reqs"`
	RateLimitWindow      time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled    bool          `koanf:"rate_limit_disabled"`

	// LoginRateLimitAll counts every login attempt against the login limit.
	// When false only rejected credentials count.
	LoginRateLimitAll bool `koanf:"login_rate_limit_all"`

	// MFACode is the fixed second-factor value accepted for Admin logins.
	MFACode string `koanf:"mfa_code"`

	// EmployeeIdentity is the assignedUser value an Employee session may see.
	EmployeeIdentity string `koanf:"employee_identity"`
}

// InventoryConfig controls how strictly asset and license payloads are handled.
type InventoryConfig struct {
	// AllowDuplicateIDs accepts a create whose id already exists.
	// When false, such a create is rejected with a conflict.
	AllowDuplicateIDs bool `koanf:"allow_duplicate_ids"`

	// EnforceSeatLimit rejects licenses whose usedSeats exceeds totalSeats.
	EnforceSeatLimit bool `koanf:"enforce_seat_limit"`

	// RequireFields validates that create payloads carry every descriptive field.
	RequireFields bool `koanf:"require_fields"`
}

// MonitoringConfig configures the optional live collectors.
// Both collectors are disabled by default; the seeded samples are served as-is.
type MonitoringConfig struct {
	HostEnabled     bool          `koanf:"host_enabled"`
	HostDeviceID    string        `koanf:"host_device_id"`
	SNMPEnabled     bool          `koanf:"snmp_enabled"`
	SNMPTargets     []string      `koanf:"snmp_targets"`
	SNMPCommunity   string        `koanf:"snmp_community"`
	SNMPPort        uint16        `koanf:"snmp_port"`
	SNMPTimeout     time.Duration `koanf:"snmp_timeout"`
	SNMPIfIndex     int           `koanf:"snmp_if_index"`
	AbnormalMB      int           `koanf:"abnormal_mb"`
	SampleInterval  time.Duration `koanf:"sample_interval"`
	OverheatCelsius float64       `koanf:"overheat_celsius"`
}

// EventsConfig configures the in-process audit event bus.
type EventsConfig struct {
	Enabled bool  `koanf:"enabled"`
	Buffer  int64 `koanf:"buffer"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from all sources and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// ListenAddr returns the host:port the HTTP server binds to.
func (s ServerConfig) ListenAddr() string {
	return joinHostPort(s.Host, s.Port)
}
