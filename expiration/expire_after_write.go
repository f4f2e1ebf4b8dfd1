package expiration

import (
	"time"

	"github.com/antony0531/real-estate-tracker-sub002/types"
)

/*
ExpireAfterWrite is a fixed time-to-live measured from the moment the entry
was last written. Reads do not slide the window: an entry written at t with
TTL d is dead at t+d no matter how often it was read in between.

Overwriting a key resets the baseline, so the new TTL is measured from the
overwrite, not from the original write.
*/
type ExpireAfterWrite struct{}

// IsExpired reports whether the entry's TTL has elapsed since it was stored.
// A non-positive TTL never happens in practice (the engine substitutes its
// default), but is treated as immediately expired rather than immortal.
func (ExpireAfterWrite) IsExpired(ent *types.Entry, now time.Time) bool {
	return !ent.Live(now)
}

// OnWrite stamps the expiration baseline.
func (ExpireAfterWrite) OnWrite(ent *types.Entry, now time.Time) {
	ent.StoredAt = now
}
