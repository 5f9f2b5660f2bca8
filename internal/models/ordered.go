// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

// OrderedMap is a string-keyed map that marshals its keys in insertion order.
// Not safe for concurrent use.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Set stores v under key. A new key is appended to the key order.
func (m *OrderedMap[V]) Set(key string, v V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DepartmentCounts maps department name to asset count in first-seen order.
type DepartmentCounts = OrderedMap[int]

// Increment adds one to the count stored under key.
func Increment(m *DepartmentCounts, key string) {
	m.Set(key, m.values[key]+1)
}

// Integration status values.
const (
	IntegrationActive   = "Active"
	IntegrationInactive = "Inactive"
)

// IntegrationStatus is the last known state of an external integration.
type IntegrationStatus struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	LastCheck string `json:"lastCheck"`
}

// IntegrationStatusMap maps integration key to status in registration order.
type IntegrationStatusMap = OrderedMap[IntegrationStatus]
