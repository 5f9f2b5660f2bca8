// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

/*
Package monitoring serves hardware health, network and backup samples.

By default the seeded samples are served unchanged. Live collectors can be
registered to refresh the store when the endpoints are read:

  - HostCollector samples the local machine with gopsutil (CPU load,
    memory utilization, temperature sensors)
  - SNMPCollector polls ifOperStatus and the octet counters of one interface
    per device with gosnmp

Each collector runs behind a rate limiter (one poll per sample interval) and
a circuit breaker. A throttled, rejected or failed poll leaves the stored
samples as they were, so a read never fails because a device is unreachable.

Usage:

	svc := monitoring.NewService(st,
	    monitoring.WithSampleInterval(cfg.Monitoring.SampleInterval),
	    monitoring.WithHealthCollector(monitoring.NewHostCollector("", 85)),
	)
	samples := svc.Hardware(ctx)
*/
package monitoring
