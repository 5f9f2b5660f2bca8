// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package authz

import (
	"sync"
	"time"

	"github.com/tomtom215/iims/internal/metrics"
)

// decision identifies one (role, object, action) question asked of casbin.
type decision struct {
	role   string
	object string
	action string
}

type verdict struct {
	allowed bool
	expires time.Time
}

// decisionCache remembers casbin verdicts per role. The role set and the
// policy are both fixed, so the map stays a handful of entries and expired
// verdicts are dropped when they are next looked up.
type decisionCache struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	verdicts map[decision]verdict
}

func newDecisionCache(ttl time.Duration) *decisionCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &decisionCache{
		ttl:      ttl,
		now:      time.Now,
		verdicts: make(map[decision]verdict),
	}
}

// lookup returns the cached verdict for d, if one is still fresh.
func (c *decisionCache) lookup(d decision) (allowed, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, found := c.verdicts[d]
	switch {
	case !found:
		metrics.RecordAuthzCacheLookup("miss")
		return false, false
	case !c.now().Before(v.expires):
		delete(c.verdicts, d)
		metrics.RecordAuthzCacheLookup("expired")
		return false, false
	}
	metrics.RecordAuthzCacheLookup("hit")
	return v.allowed, true
}

func (c *decisionCache) store(d decision, allowed bool) {
	c.mu.Lock()
	c.verdicts[d] = verdict{allowed: allowed, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *decisionCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.verdicts)
}

// clear forgets every verdict.
func (c *decisionCache) clear() {
	c.mu.Lock()
	clear(c.verdicts)
	c.mu.Unlock()
}
