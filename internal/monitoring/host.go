// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package monitoring

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/models"
)

// HostCollector samples the machine the server runs on.
type HostCollector struct {
	deviceID        string
	overheatCelsius float64
	now             func() time.Time

	usageCollector  func(context.Context, time.Duration, bool) ([]float64, error)
	memoryCollector func(context.Context) (*mem.VirtualMemoryStat, error)
	sensorCollector func(context.Context) ([]host.TemperatureStat, error)
}

// NewHostCollector creates a collector reporting under deviceID. An empty
// deviceID falls back to the hostname.
func NewHostCollector(deviceID string, overheatCelsius float64) *HostCollector {
	if deviceID == "" {
		deviceID = hostIdentifier()
	}
	return &HostCollector{
		deviceID:        deviceID,
		overheatCelsius: overheatCelsius,
		now:             time.Now,
		usageCollector:  cpu.PercentWithContext,
		memoryCollector: mem.VirtualMemoryWithContext,
		sensorCollector: host.SensorsTemperaturesWithContext,
	}
}

// Name identifies the collector in metrics and logs.
func (c *HostCollector) Name() string {
	return "host"
}

// Collect takes one health sample. CPU and memory failures fail the poll;
// missing temperature sensors only mean the host is not reported as overheating.
func (c *HostCollector) Collect(ctx context.Context) ([]models.HealthSample, error) {
	percent, err := c.usageCollector(ctx, 0, false)
	if err != nil {
		return nil, fmt.Errorf("cpu usage: %w", err)
	}
	var cpuLoad float64
	if len(percent) > 0 {
		cpuLoad = percent[0]
	}

	vm, err := c.memoryCollector(ctx)
	if err != nil {
		return nil, fmt.Errorf("memory usage: %w", err)
	}

	return []models.HealthSample{{
		DeviceID:      c.deviceID,
		CPULoad:       round1(cpuLoad),
		MemoryUtil:    round1(vm.UsedPercent),
		IsOverheating: c.overheating(ctx),
		LastCheck:     c.now().Format(models.TimestampLayout),
	}}, nil
}

func (c *HostCollector) overheating(ctx context.Context) bool {
	temps, err := c.sensorCollector(ctx)
	if err != nil && len(temps) == 0 {
		logging.Debug().Err(err).Msg("temperature sensors unavailable")
		return false
	}
	for _, t := range temps {
		if c.overheatCelsius > 0 && t.Temperature >= c.overheatCelsius {
			return true
		}
		if t.Critical > 0 && t.Temperature >= t.Critical {
			return true
		}
		if t.High > 0 && t.Temperature >= t.High {
			return true
		}
	}
	return false
}

func hostIdentifier() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "localhost"
	}
	return name
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
