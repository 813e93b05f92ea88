package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Entry is one cached value with its expiry.
type Entry struct {
	Value     interface{}
	ExpiresAt time.Time
}

// Cache is a TTL cache with an injected clock and explicit invalidation. It
// replaces the module-level response caches of the original platform.
type Cache struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	entries map[string]Entry
}

// New creates a Cache driven by the given clock.
func New(clock clockwork.Clock) *Cache {
	return &Cache{
		clock:   clock,
		entries: make(map[string]Entry),
	}
}

// Get returns the live entry for key, if any. Expired entries are dropped
// lazily on access.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.clock.Now().After(entry.ExpiresAt) {
		c.Invalidate(key)
		return nil, false
	}
	return entry.Value, true
}

// Set stores value under key for ttl.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = Entry{
		Value:     value,
		ExpiresAt: c.clock.Now().Add(ttl),
	}
}

// Invalidate drops the entry for key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
