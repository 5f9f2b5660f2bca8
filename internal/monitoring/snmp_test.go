// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package monitoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNMPClient struct {
	connectErr error
	getErr     error
	oper       int
	in, out    uint
	closed     bool
	requested  []string
}

func (f *fakeSNMPClient) Connect() error { return f.connectErr }

func (f *fakeSNMPClient) Get(oids []string) (*gosnmp.SnmpPacket, error) {
	f.requested = oids
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &gosnmp.SnmpPacket{Variables: []gosnmp.SnmpPDU{
		{Name: oids[0], Type: gosnmp.Integer, Value: f.oper},
		{Name: oids[1][1:], Type: gosnmp.Counter32, Value: f.in},
		{Name: oids[2], Type: gosnmp.Counter32, Value: f.out},
	}}, nil
}

func (f *fakeSNMPClient) Close() error {
	f.closed = true
	return nil
}

func newTestSNMPCollector(client *fakeSNMPClient, clock *time.Time) *SNMPCollector {
	c := NewSNMPCollector(SNMPCollectorConfig{
		Targets:    []SNMPTarget{{DeviceID: "NET-001", Host: "10.0.0.1", Port: 161}},
		Community:  "public",
		Timeout:    time.Second,
		IfIndex:    2,
		AbnormalMB: 250,
	})
	c.dial = func(SNMPTarget) snmpClient { return client }
	c.now = func() time.Time { return *clock }
	return c
}

func TestParseSNMPTargets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []string
		want    []SNMPTarget
		wantErr bool
	}{
		{
			name:    "id and host",
			entries: []string{"NET-001=10.0.0.1"},
			want:    []SNMPTarget{{DeviceID: "NET-001", Host: "10.0.0.1", Port: 161}},
		},
		{
			name:    "id host and port",
			entries: []string{"NET-002=switch.local:1161"},
			want:    []SNMPTarget{{DeviceID: "NET-002", Host: "switch.local", Port: 1161}},
		},
		{
			name:    "bare host",
			entries: []string{" 10.0.0.9 ", ""},
			want:    []SNMPTarget{{DeviceID: "10.0.0.9", Host: "10.0.0.9", Port: 161}},
		},
		{
			name:    "bare host and port",
			entries: []string{"10.0.0.9:162"},
			want:    []SNMPTarget{{DeviceID: "10.0.0.9", Host: "10.0.0.9", Port: 162}},
		},
		{name: "missing host", entries: []string{"NET-003="}, wantErr: true},
		{name: "bad port", entries: []string{"NET-004=10.0.0.1:99999"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSNMPTargets(tt.entries, 161)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSNMPCollector_Throughput(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	client := &fakeSNMPClient{oper: 1}
	c := newTestSNMPCollector(client, &clock)

	first, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "NET-001", first[0].DeviceID)
	assert.Equal(t, 0, first[0].BandwidthMB, "first poll has no baseline")
	assert.False(t, first[0].IsDowntime)
	assert.False(t, first[0].AbnormalTraffic)
	assert.True(t, client.closed)
	assert.Equal(t, []string{
		".1.3.6.1.2.1.2.2.1.8.2",
		".1.3.6.1.2.1.2.2.1.10.2",
		".1.3.6.1.2.1.2.2.1.16.2",
	}, client.requested)

	clock = clock.Add(10 * time.Second)
	client.in, client.out = 2_000_000_000, 1_000_000_000

	second, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 300, second[0].BandwidthMB)
	assert.True(t, second[0].AbnormalTraffic)
	assert.True(t, second[0].IsEvent())
}

func TestSNMPCollector_Downtime(t *testing.T) {
	t.Parallel()

	clock := time.Now()

	tests := []struct {
		name   string
		client *fakeSNMPClient
	}{
		{"connect failure", &fakeSNMPClient{connectErr: errors.New("dial")}},
		{"get failure", &fakeSNMPClient{getErr: errors.New("timeout")}},
		{"interface down", &fakeSNMPClient{oper: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newTestSNMPCollector(tt.client, &clock)
			samples, err := c.Collect(context.Background())
			require.NoError(t, err)
			require.Len(t, samples, 1)
			assert.True(t, samples[0].IsDowntime)
			assert.Equal(t, 0, samples[0].BandwidthMB)
		})
	}
}

func TestSNMPCollector_CanceledContext(t *testing.T) {
	t.Parallel()

	clock := time.Now()
	c := newTestSNMPCollector(&fakeSNMPClient{oper: 1}, &clock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCounterDelta(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(500), counterDelta(1000, 1500))
	assert.Equal(t, uint64(396), counterDelta(4294967000, 100))
}
