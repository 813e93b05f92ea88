package cache

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestCacheExpiresByClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New(clock)

	c.Set("key", "value", time.Minute)

	if got, ok := c.Get("key"); !ok || got != "value" {
		t.Fatalf("Get = %v, %v; want value, true", got, ok)
	}

	clock.Advance(59 * time.Second)
	if _, ok := c.Get("key"); !ok {
		t.Error("entry should still be live before the TTL elapses")
	}

	clock.Advance(2 * time.Second)
	if _, ok := c.Get("key"); ok {
		t.Error("entry should be dropped after the TTL elapses")
	}
}

func TestCacheInvalidate(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New(clock)

	c.Set("key", 42, time.Hour)
	c.Invalidate("key")

	if _, ok := c.Get("key"); ok {
		t.Error("invalidated entry should be gone")
	}
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	c := New(clockwork.NewFakeClock())
	if _, ok := c.Get("missing"); ok {
		t.Error("expected a miss for an unknown key")
	}
}

func TestCacheOverwrite(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New(clock)

	c.Set("key", "old", time.Second)
	c.Set("key", "new", time.Hour)
	clock.Advance(2 * time.Second)

	got, ok := c.Get("key")
	if !ok || got != "new" {
		t.Errorf("Get = %v, %v; want new, true", got, ok)
	}
}
