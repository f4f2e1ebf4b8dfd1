// Package remote implements the second-level cache tier: a key/value
// store of serialized cache snapshots shared between processes.
//
// The in-process cache never depends on a tier for correctness. A tier
// failure or miss only means the data-fetch layer falls back to the
// backing store.
package remote

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key is absent or expired.
var ErrNotFound = errors.New("remote: key not found")

// Tier is the contract every remote tier must follow. Values are opaque
// serialized bytes; callers own the encoding.
type Tier interface {

	// Get retrieves the bytes stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with auto-expiration after ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the tier's resources.
	Close() error
}
