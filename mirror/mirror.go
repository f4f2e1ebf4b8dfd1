// Package mirror propagates cache writes to a remote tier without ever
// blocking the cache's own operations.
package mirror

import (
	"context"
	"time"
)

/*
Policy is the contract for write propagation. The cache engine does not
care which policy is used; it calls these methods and moves on.

Every method is called synchronously from cache operations, so
implementations must not block.
*/
type Policy interface {

	// OnWrite is called whenever the cache stores a value.
	OnWrite(key string, value any, ttl time.Duration)

	// OnDelete is called whenever the cache explicitly removes a key.
	// Lazy TTL evictions are not propagated: the remote tier carries
	// its own TTLs and expires those entries by itself.
	OnDelete(key string)

	// Close flushes pending work and shuts the policy down.
	Close()
}

// The worker owns the tier calls, not the cache, so a background context
// is the right scope for them.
var background = context.Background()
