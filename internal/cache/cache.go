// Package cache provides per-session memoization of rate provider calls.
// The cache key is derived from every parameter of a query, so changing any
// parameter is the only invalidation signal; there is no TTL. Failures are
// never stored, which keeps a failed call retryable with the same parameters.
package cache

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// ResultCache memoizes successful computations keyed by a parameter-derived
// string. It is safe for concurrent use: identical in-flight lookups are
// collapsed into a single computation.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]any
	group   singleflight.Group
}

// NewResultCache creates an empty ResultCache.
func NewResultCache() *ResultCache {
	return &ResultCache{
		entries: make(map[string]any),
	}
}

// Do returns the cached value for key if present; otherwise it invokes compute,
// stores the result on success and returns it. Errors pass through uncached.
func (c *ResultCache) Do(key string, compute func() (any, error)) (any, error) {
	c.mu.RLock()
	value, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return value, nil
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check under the group: another caller may have stored the
		// value between the read above and entering the group.
		c.mu.RLock()
		cached, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		computed, err := compute()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = computed
		c.mu.Unlock()
		return computed, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Flush discards every cached entry.
func (c *ResultCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]any)
}

// Len returns the number of cached entries.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
