// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() reproduces the demo behavior.
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Server.PublicURL != "http://localhost:5000" {
		t.Errorf("Server.PublicURL = %q", cfg.Server.PublicURL)
	}
	if cfg.Security.MFACode != "123456" {
		t.Errorf("Security.MFACode = %q, want 123456", cfg.Security.MFACode)
	}
	if cfg.Security.EmployeeIdentity != "Alice Johnson" {
		t.Errorf("Security.EmployeeIdentity = %q", cfg.Security.EmployeeIdentity)
	}
	if cfg.Security.LoginRateLimitAll {
		t.Error("Security.LoginRateLimitAll should be false by default")
	}
	if cfg.Inventory.AllowDuplicateIDs {
		t.Error("Inventory.AllowDuplicateIDs should be false by default")
	}
	if !cfg.Inventory.EnforceSeatLimit {
		t.Error("Inventory.EnforceSeatLimit should be true by default")
	}
	if cfg.Monitoring.HostEnabled || cfg.Monitoring.SNMPEnabled {
		t.Error("live collectors should be disabled by default")
	}
	if !cfg.Events.Enabled {
		t.Error("Events.Enabled should be true by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

// isolate points CONFIG_PATH at a path that does not exist and moves into an
// empty directory so no stray config.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	return dir
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.ListenAddr() != "0.0.0.0:5000" {
		t.Errorf("ListenAddr() = %q", cfg.Server.ListenAddr())
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MFA_CODE", "654321")
	t.Setenv("ALLOW_DUPLICATE_IDS", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("SNMP_ENABLED", "true")
	t.Setenv("SNMP_TARGETS", "10.0.0.1,10.0.0.2")
	t.Setenv("SNMP_TIMEOUT", "3s")
	t.Setenv("LOGIN_RATE_LIMIT_ALL", "true")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Security.MFACode != "654321" {
		t.Errorf("Security.MFACode = %q", cfg.Security.MFACode)
	}
	if !cfg.Inventory.AllowDuplicateIDs {
		t.Error("Inventory.AllowDuplicateIDs should be true")
	}
	if !cfg.Security.LoginRateLimitAll {
		t.Error("Security.LoginRateLimitAll should be true")
	}
	wantOrigins := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, wantOrigins) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}
	if !reflect.DeepEqual(cfg.Monitoring.SNMPTargets, []string{"10.0.0.1", "10.0.0.2"}) {
		t.Errorf("SNMPTargets = %v", cfg.Monitoring.SNMPTargets)
	}
	if cfg.Monitoring.SNMPTimeout != 3*time.Second {
		t.Errorf("SNMPTimeout = %v, want 3s", cfg.Monitoring.SNMPTimeout)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "iims.yaml")
	content := []byte(`
server:
  port: 9090
  public_url: https://iims.example.com
inventory:
  enforce_seat_limit: false
logging:
  format: console
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9191")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9191 {
		t.Errorf("env should win over file: Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Server.PublicURL != "https://iims.example.com" {
		t.Errorf("Server.PublicURL = %q", cfg.Server.PublicURL)
	}
	if cfg.Inventory.EnforceSeatLimit {
		t.Error("file should disable seat limit enforcement")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q", cfg.Logging.Format)
	}
	if cfg.Security.MFACode != "123456" {
		t.Errorf("unset values keep defaults: MFACode = %q", cfg.Security.MFACode)
	}
}

func TestLoadWithKoanf_InvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("LOG_LEVEL", "verbose")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for LOG_LEVEL=verbose")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"http_port", "server.port"},
		{"SNMP_COMMUNITY", "monitoring.snmp_community"},
		{"EVENTS_ENABLED", "events.enabled"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}
