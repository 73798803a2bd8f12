package event

import (
	"sync"
	"time"
)

// seenCache remembers which notifications were already delivered so a
// redelivered message does not produce a second email. Entries expire after a
// TTL and the cache holds at most max keys, oldest evicted first.
type seenCache struct {
	mu      sync.Mutex
	max     int
	ttl     time.Duration
	entries map[string]time.Time
	order   []string
}

func newSeenCache(max int, ttl time.Duration) *seenCache {
	return &seenCache{
		max:     max,
		ttl:     ttl,
		entries: make(map[string]time.Time),
	}
}

func (c *seenCache) Seen(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	at, ok := c.entries[key]
	if !ok {
		return false
	}
	if time.Since(at) > c.ttl {
		delete(c.entries, key)
		return false
	}
	return true
}

func (c *seenCache) Mark(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		c.order = append(c.order, key)
	}
	c.entries[key] = time.Now()

	for len(c.entries) > c.max && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}
