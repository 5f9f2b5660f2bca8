// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateMonitoring(); err != nil {
		return err
	}
	if err := c.validateEvents(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	return validateHTTPURL(c.Server.PublicURL, "PUBLIC_URL")
}

func (c *Config) validateSecurity() error {
	if strings.TrimSpace(c.Security.MFACode) == "" {
		return fmt.Errorf("MFA_CODE must not be empty")
	}
	if strings.TrimSpace(c.Security.EmployeeIdentity) == "" {
		return fmt.Errorf("EMPLOYEE_IDENTITY must not be empty")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.LoginRateLimitReqs < 1 || c.Security.LoginRateLimitWindow <= 0 {
		return fmt.Errorf("LOGIN_RATE_LIMIT_REQS and LOGIN_RATE_LIMIT_WINDOW must be positive")
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQS and RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateMonitoring() error {
	m := c.Monitoring
	if (m.HostEnabled || m.SNMPEnabled) && m.SampleInterval <= 0 {
		return fmt.Errorf("MONITORING_SAMPLE_INTERVAL must be positive when a live collector is enabled")
	}
	if !m.SNMPEnabled {
		return nil
	}
	if len(m.SNMPTargets) == 0 {
		return fmt.Errorf("SNMP_TARGETS is required when SNMP_ENABLED=true")
	}
	if m.SNMPCommunity == "" {
		return fmt.Errorf("SNMP_COMMUNITY is required when SNMP_ENABLED=true")
	}
	if m.SNMPPort == 0 {
		return fmt.Errorf("SNMP_PORT must be non-zero")
	}
	if m.SNMPIfIndex < 1 {
		return fmt.Errorf("SNMP_IF_INDEX must be at least 1, got %d", m.SNMPIfIndex)
	}
	if m.AbnormalMB < 0 {
		return fmt.Errorf("MONITORING_ABNORMAL_MB must not be negative")
	}
	return nil
}

func (c *Config) validateEvents() error {
	if c.Events.Enabled && c.Events.Buffer < 0 {
		return fmt.Errorf("EVENTS_BUFFER must not be negative")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error (got %q)", c.Logging.Level)
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console (got %q)", c.Logging.Format)
	}
	return nil
}

// validateHTTPURL checks that rawURL is an absolute http(s) base URL.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}
	return nil
}
