// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/antony0531/real-estate-tracker-sub002/types"
)

/*
Strategy is the rule that decides whether an entry is still valid.
Keeping it behind an interface lets the expiration behavior be swapped
without touching the store.
*/
type Strategy interface {

	// IsExpired reports whether the entry is dead at the given instant.
	IsExpired(*types.Entry, time.Time) bool

	// OnWrite is called whenever an entry is written or replaced.
	// This is where the strategy stamps its expiration baseline.
	OnWrite(*types.Entry, time.Time)
}
