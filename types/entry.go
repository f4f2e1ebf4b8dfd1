package types

import "time"

/*
Entry is one cached value together with its expiration baseline.

An entry is live iff now.Sub(StoredAt) < TTL. Once that stops holding, the
entry is logically absent even while it is still resident in the store;
the store removes it on the next read.

Entries are stored and replaced by value, so a reader can never observe a
value without its matching timestamp.
*/
type Entry struct {
	Key      string
	Value    any
	StoredAt time.Time
	TTL      time.Duration
}

// Live reports whether the entry is still valid at the given instant.
func (e Entry) Live(now time.Time) bool {
	return now.Sub(e.StoredAt) < e.TTL
}

// Stats is a point-in-time diagnostic snapshot of the store.
//
// Count and Keys cover resident entries, live or not: expired entries that
// have not been lazily evicted yet are still reported. Taking a snapshot
// never mutates the store.
type Stats struct {
	Count int
	Keys  []string
}
