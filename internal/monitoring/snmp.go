// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package monitoring

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/models"
)

// Interface table OIDs. The interface index is appended.
const (
	oidIfOperStatus = ".1.3.6.1.2.1.2.2.1.8"
	oidIfInOctets   = ".1.3.6.1.2.1.2.2.1.10"
	oidIfOutOctets  = ".1.3.6.1.2.1.2.2.1.16"

	ifOperStatusUp = 1

	counter32Max = 1<<32 - 1
	bytesPerMB   = 1_000_000
)

// snmpClient is the subset of gosnmp.GoSNMP the collector uses.
type snmpClient interface {
	Connect() error
	Get(oids []string) (*gosnmp.SnmpPacket, error)
	Close() error
}

type goSNMPClient struct {
	*gosnmp.GoSNMP
}

func (c goSNMPClient) Close() error {
	if c.Conn == nil {
		return nil
	}
	return c.Conn.Close()
}

// SNMPTarget is one polled network device.
type SNMPTarget struct {
	DeviceID string
	Host     string
	Port     uint16
}

// ParseSNMPTargets parses "DEVICE-ID=host[:port]" entries. An entry without
// a device id reports under its host.
func ParseSNMPTargets(entries []string, defaultPort uint16) ([]SNMPTarget, error) {
	targets := make([]SNMPTarget, 0, len(entries))
	for _, raw := range entries {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}

		id, addr := entry, entry
		if before, after, ok := strings.Cut(entry, "="); ok {
			id, addr = strings.TrimSpace(before), strings.TrimSpace(after)
		}

		target := SNMPTarget{DeviceID: id, Host: addr, Port: defaultPort}
		if h, p, err := net.SplitHostPort(addr); err == nil {
			port, perr := strconv.ParseUint(p, 10, 16)
			if perr != nil {
				return nil, fmt.Errorf("snmp target %q: invalid port", entry)
			}
			target.Host = h
			target.Port = uint16(port)
			if id == addr {
				target.DeviceID = h
			}
		}
		if target.DeviceID == "" || target.Host == "" {
			return nil, fmt.Errorf("snmp target %q: missing device id or host", entry)
		}
		targets = append(targets, target)
	}
	return targets, nil
}

// SNMPCollectorConfig configures an SNMPCollector.
type SNMPCollectorConfig struct {
	Targets    []SNMPTarget
	Community  string
	Timeout    time.Duration
	IfIndex    int
	AbnormalMB int
}

type counterReading struct {
	in, out uint64
	at      time.Time
}

// SNMPCollector polls interface counters on network devices. Bandwidth is
// the combined in/out throughput in MB/s between two polls, so the first
// poll of each device reports zero.
type SNMPCollector struct {
	cfg  SNMPCollectorConfig
	now  func() time.Time
	dial func(target SNMPTarget) snmpClient

	mu   sync.Mutex
	last map[string]counterReading
}

// NewSNMPCollector creates a collector for the configured targets.
func NewSNMPCollector(cfg SNMPCollectorConfig) *SNMPCollector {
	if cfg.IfIndex <= 0 {
		cfg.IfIndex = 1
	}
	c := &SNMPCollector{
		cfg:  cfg,
		now:  time.Now,
		last: make(map[string]counterReading),
	}
	c.dial = c.newClient
	return c
}

func (c *SNMPCollector) newClient(target SNMPTarget) snmpClient {
	return goSNMPClient{&gosnmp.GoSNMP{
		Target:             target.Host,
		Port:               target.Port,
		Community:          c.cfg.Community,
		Version:            gosnmp.Version2c,
		Timeout:            c.cfg.Timeout,
		Retries:            1,
		MaxOids:            gosnmp.MaxOids,
		ExponentialTimeout: true,
	}}
}

// Name identifies the collector in metrics and logs.
func (c *SNMPCollector) Name() string {
	return "snmp"
}

// Collect polls every target once. An unreachable device is reported as
// down rather than failing the whole poll.
func (c *SNMPCollector) Collect(ctx context.Context) ([]models.NetworkSample, error) {
	samples := make([]models.NetworkSample, 0, len(c.cfg.Targets))
	for _, target := range c.cfg.Targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		samples = append(samples, c.poll(target))
	}
	return samples, nil
}

func (c *SNMPCollector) poll(target SNMPTarget) models.NetworkSample {
	sample := models.NetworkSample{DeviceID: target.DeviceID}

	client := c.dial(target)
	if err := client.Connect(); err != nil {
		logging.Warn().Err(err).Str("device_id", target.DeviceID).Msg("SNMP connect failed")
		sample.IsDowntime = true
		return sample
	}
	defer func() { _ = client.Close() }()

	idx := strconv.Itoa(c.cfg.IfIndex)
	oids := []string{oidIfOperStatus + "." + idx, oidIfInOctets + "." + idx, oidIfOutOctets + "." + idx}
	packet, err := client.Get(oids)
	if err != nil {
		logging.Warn().Err(err).Str("device_id", target.DeviceID).Msg("SNMP get failed")
		sample.IsDowntime = true
		return sample
	}

	var (
		operStatus          int64
		inOctets, outOctets uint64
	)
	for _, pdu := range packet.Variables {
		if pdu.Type == gosnmp.NoSuchObject || pdu.Type == gosnmp.NoSuchInstance || pdu.Value == nil {
			continue
		}
		name := "." + strings.TrimPrefix(pdu.Name, ".")
		switch name {
		case oids[0]:
			operStatus = gosnmp.ToBigInt(pdu.Value).Int64()
		case oids[1]:
			inOctets = gosnmp.ToBigInt(pdu.Value).Uint64()
		case oids[2]:
			outOctets = gosnmp.ToBigInt(pdu.Value).Uint64()
		}
	}

	sample.IsDowntime = operStatus != ifOperStatusUp
	sample.BandwidthMB = c.throughputMB(target.DeviceID, inOctets, outOctets)
	sample.AbnormalTraffic = c.cfg.AbnormalMB > 0 && sample.BandwidthMB > c.cfg.AbnormalMB
	return sample
}

func (c *SNMPCollector) throughputMB(deviceID string, in, out uint64) int {
	now := c.now()

	c.mu.Lock()
	prev, ok := c.last[deviceID]
	c.last[deviceID] = counterReading{in: in, out: out, at: now}
	c.mu.Unlock()

	if !ok {
		return 0
	}
	elapsed := now.Sub(prev.at).Seconds()
	if elapsed <= 0 {
		return 0
	}

	delta := counterDelta(prev.in, in) + counterDelta(prev.out, out)
	return int(float64(delta) / bytesPerMB / elapsed)
}

// counterDelta returns cur-prev, assuming a single Counter32 wrap when cur < prev.
func counterDelta(prev, cur uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	return cur + counter32Max + 1 - prev
}
