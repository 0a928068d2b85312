package worksheet

import (
	"sync"
	"time"
)

type cacheEntry struct {
	value    *Worksheet
	storedAt time.Time
}

// Cache holds generated worksheets for a fixed TTL. Entries expire on
// read; there is no background sweeper. Safe for concurrent use.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

// NewCache creates an empty cache whose entries live for ttl.
func NewCache(ttl time.Duration, opts ...CacheOption) *Cache {
	c := &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Get returns a copy of the worksheet stored under key if it has not
// expired. Expired entries are removed.
func (c *Cache) Get(key string) (*Worksheet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value.Clone(), true
}

// Put stores a copy of ws under key, replacing any previous entry.
func (c *Cache) Put(key string, ws *Worksheet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: ws.Clone(), storedAt: c.now()}
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
