package discovery

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/meridian-labs/jira-mcp/internal/catalog"
)

// cacheEntry is one cached discovery result.
type cacheEntry struct {
	data []*catalog.FieldDefinition

	// timestamp anchors TTL validity: the entry is valid while
	// now - timestamp < ttl.
	timestamp time.Time

	// lastAccessed is updated on every read. Recency order for eviction is
	// maintained by the underlying LRU; this field feeds observability.
	lastAccessed time.Time
}

// cache is a TTL-bounded LRU cache of discovery results keyed by entity type.
//
// The LRU handles capacity eviction (least recently used first) and is safe
// for concurrent use; TTL validity is checked on read, and an expired entry
// is removed and treated as absent.
type cache struct {
	lru *lru.Cache[string, *cacheEntry]
	ttl time.Duration

	// now is replaceable in tests to drive TTL expiry.
	now func() time.Time
}

func newCache(ttl time.Duration, maxSize int) (*cache, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %s", ttl)
	}
	if maxSize <= 0 {
		return nil, fmt.Errorf("cache max size must be positive, got %d", maxSize)
	}

	inner, err := lru.New[string, *cacheEntry](maxSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}

	return &cache{
		lru: inner,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// get returns the cached data for key if present and unexpired. A hit
// refreshes the entry's recency position and lastAccessed time.
func (c *cache) get(key string) ([]*catalog.FieldDefinition, bool) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.timestamp) >= c.ttl {
		c.lru.Remove(key)
		return nil, false
	}

	entry.lastAccessed = c.now()
	return entry.data, true
}

// put stores data under key, evicting the least recently used entry when the
// insert would exceed capacity.
func (c *cache) put(key string, data []*catalog.FieldDefinition) {
	now := c.now()
	c.lru.Add(key, &cacheEntry{
		data:         data,
		timestamp:    now,
		lastAccessed: now,
	})
}

// remove drops the entry for key if present.
func (c *cache) remove(key string) {
	c.lru.Remove(key)
}

// len reports the number of cached entries.
func (c *cache) len() int {
	return c.lru.Len()
}
