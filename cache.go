/*
Package cache is an in-process, keyed store of derived tracker data with
per-category TTL expiration and pattern-based invalidation.

One map holds every entry; one mutex guards it. Expiration is lazy: an
expired entry is removed by the read that discovers it, in the same
critical section, so an expiring read can never race a concurrent write
into losing that write. No operation blocks on I/O and none calls back
into the cache while holding the lock.
*/
package cache

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/antony0531/real-estate-tracker-sub002/engine"
	"github.com/antony0531/real-estate-tracker-sub002/types"
)

// Cache is the store. Policy decisions (clock, expiration, TTL table,
// metrics, mirroring) are delegated to the engine; the Cache owns only
// the entries and the lock.
type Cache struct {
	mu      sync.Mutex
	entries map[string]types.Entry
	engine  *engine.Engine
}

// New creates an empty cache driven by the given engine.
func New(eng *engine.Engine) *Cache {
	return &Cache{
		entries: make(map[string]types.Entry),
		engine:  eng,
	}
}

/*
Set stores value under key, unconditionally replacing any prior entry and
resetting its expiration baseline. A non-positive ttl selects the engine's
default TTL. Set never fails.
*/
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	ent := types.Entry{Key: key, Value: value, TTL: ttl}

	// Stamp and mirror outside the lock; the entry is not shared yet.
	c.engine.OnWrite(&ent)

	c.mu.Lock()
	c.entries[key] = ent
	c.mu.Unlock()
}

/*
Get returns the value stored under key if the entry exists and is live.

An entry found past its TTL is deleted inside the same critical section
(lazy eviction) and reported as absent. Presence is signaled through the
bool, never through an error: absence is a normal outcome here.
*/
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	ent, ok := c.entries[key]
	if ok && c.engine.IsExpired(&ent) {
		delete(c.entries, key)
		c.mu.Unlock()

		// The remote tier expires this entry on its own TTL,
		// so lazy evictions are not propagated.
		c.engine.Metrics.Expire()
		c.engine.Metrics.Miss()
		return nil, false
	}
	c.mu.Unlock()

	if !ok {
		c.engine.Metrics.Miss()
		return nil, false
	}

	c.engine.Metrics.Hit()
	return ent.Value, true
}

// Delete removes key unconditionally. Deleting an absent key is a no-op.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	_, ok := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()

	if ok {
		c.engine.Metrics.Invalidate()
	}
	c.engine.OnDelete(key)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	removed := make([]string, 0, len(c.entries))
	for k := range c.entries {
		removed = append(removed, k)
	}
	c.entries = make(map[string]types.Entry)
	c.mu.Unlock()

	for _, k := range removed {
		c.engine.Metrics.Invalidate()
		c.engine.OnDelete(k)
	}
}

/*
InvalidateCategory removes entries belonging to a category.

With a qualifier it deletes the single key "<category>:<qualifier...>".
Without one it sweeps: the bare category key plus every key with the
"<category>:" prefix is removed. The sweep scans the full key set under
the lock — O(n) in resident entries, which is fine at the tens-to-hundreds
of keys this cache holds but should not be assumed cheap beyond that.
*/
func (c *Cache) InvalidateCategory(category string, qualifier ...string) {
	if len(qualifier) > 0 {
		c.Delete(joinKey(category, qualifier))
		return
	}

	prefix := category + ":"

	c.mu.Lock()
	var removed []string
	for k := range c.entries {
		if k == category || strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
			removed = append(removed, k)
		}
	}
	c.mu.Unlock()

	for _, k := range removed {
		c.engine.Metrics.Invalidate()
		c.engine.OnDelete(k)
	}
}

/*
Keys returns a snapshot of the resident key set, sorted for determinism.

Resident is not live: a key may refer to an entry whose TTL elapsed but
that no read has evicted yet. Callers must not infer liveness from
presence here.
*/
func (c *Cache) Keys() []string {
	c.mu.Lock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	c.mu.Unlock()

	sort.Strings(keys)
	return keys
}

// Stats reports the resident entry count and key set. It is observational
// only: no eviction, no mutation.
func (c *Cache) Stats() types.Stats {
	keys := c.Keys()
	return types.Stats{Count: len(keys), Keys: keys}
}

// Close shuts down the engine (flushing the mirror, if one is configured).
// The cache itself needs no teardown.
func (c *Cache) Close() {
	c.engine.Close()
}
