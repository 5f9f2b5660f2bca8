// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/iims/config.yaml",
	"/etc/iims/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config populated with defaults. They are applied
// first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			PublicURL:       "http://localhost:5000",
		},
		Security: SecurityConfig{
			CORSOrigins:          []string{"*"},
			LoginRateLimitReqs:   5,
			LoginRateLimitWindow: 5 * time.Minute,
			LoginRateLimitAll:    false,
			RateLimitReqs:        100,
			RateLimitWindow:      time.Minute,
			RateLimitDisabled:    false,
			MFACode:              "123456",
			EmployeeIdentity:     "Alice Johnson",
		},
		Inventory: InventoryConfig{
			AllowDuplicateIDs: false,
			EnforceSeatLimit:  true,
			RequireFields:     false,
		},
		Monitoring: MonitoringConfig{
			HostEnabled:     false,
			HostDeviceID:    "", // hostname when empty
			SNMPEnabled:     false,
			SNMPTargets:     []string{},
			SNMPCommunity:   "public",
			SNMPPort:        161,
			SNMPTimeout:     2 * time.Second,
			SNMPIfIndex:     1,
			AbnormalMB:      500,
			SampleInterval:  5 * time.Second,
			OverheatCelsius: 85,
		},
		Events: EventsConfig{
			Enabled: true,
			Buffer:  64,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults
//  2. Config File: optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. Environment Variables: mapped names only, see envTransformFunc
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths are parsed as comma-separated slices.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"monitoring.snmp_targets",
}

// processSliceFields converts comma-separated env values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"public_url":            "server.public_url",

	"cors_origins":            "security.cors_origins",
	"login_rate_limit_reqs":   "security.login_rate_limit_reqs",
	"login_rate_limit_window": "security.login_rate_limit_window",
	"login_rate_limit_all":    "security.login_rate_limit_all",
	"rate_limit_reqs":         "security.rate_limit_reqs",
	"rate_limit_window":       "security.rate_limit_window",
	"disable_rate_limit":      "security.rate_limit_disabled",
	"mfa_code":                "security.mfa_code",
	"employee_identity":       "security.employee_identity",

	"allow_duplicate_ids": "inventory.allow_duplicate_ids",
	"enforce_seat_limit":  "inventory.enforce_seat_limit",
	"require_fields":      "inventory.require_fields",

	"monitoring_host_enabled":     "monitoring.host_enabled",
	"monitoring_host_device_id":   "monitoring.host_device_id",
	"snmp_enabled":                "monitoring.snmp_enabled",
	"snmp_targets":                "monitoring.snmp_targets",
	"snmp_community":              "monitoring.snmp_community",
	"snmp_port":                   "monitoring.snmp_port",
	"snmp_timeout":                "monitoring.snmp_timeout",
	"snmp_if_index":               "monitoring.snmp_if_index",
	"monitoring_abnormal_mb":      "monitoring.abnormal_mb",
	"monitoring_sample_interval":  "monitoring.sample_interval",
	"monitoring_overheat_celsius": "monitoring.overheat_celsius",

	"events_enabled": "events.enabled",
	"events_buffer":  "events.buffer",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - SNMP_TARGETS -> monitoring.snmp_targets
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return ""
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
