// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

// Package config loads and validates IIMS configuration.
//
// Sources are layered with Koanf v2: built-in defaults, an optional YAML file
// (CONFIG_PATH, ./config.yaml, /etc/iims/config.yaml) and environment
// variables. Environment variables are mapped through an explicit allow-list;
// anything not listed in envMappings is ignored.
//
// Example config.yaml:
//
//	server:
//	  port: 5000
//	  public_url: https://iims.example.com
//	inventory:
//	  allow_duplicate_ids: false
//	monitoring:
//	  snmp_enabled: true
//	  snmp_targets: [10.0.0.1, 10.0.0.2]
package config
