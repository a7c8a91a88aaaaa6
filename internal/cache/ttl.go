// Package cache provides the snapshot cache: a single value held for a
// bounded time window. Readers during the window observe the same immutable
// value; after expiry the next Get misses and the caller refetches.
package cache

import (
	"sync"
	"time"
)

// TTLValue caches one value of type T with a time-to-live.
type TTLValue[T any] struct {
	mu        sync.Mutex
	ttl       time.Duration
	value     T
	expiresAt time.Time
	set       bool

	// now is swappable for tests.
	now func() time.Time
}

// NewTTLValue creates an empty cache with the given time-to-live.
func NewTTLValue[T any](ttl time.Duration) *TTLValue[T] {
	return &TTLValue[T]{ttl: ttl, now: time.Now}
}

// Get returns the cached value if present and unexpired.
func (c *TTLValue[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if !c.set || c.now().After(c.expiresAt) {
		c.set = false
		return zero, false
	}
	return c.value, true
}

// Set stores a value, restarting the TTL window.
func (c *TTLValue[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.expiresAt = c.now().Add(c.ttl)
	c.set = true
}

// Invalidate drops the cached value.
func (c *TTLValue[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.set = false
}
