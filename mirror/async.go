package mirror

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/antony0531/real-estate-tracker-sub002/remote"
)

// req is one pending propagation to the remote tier.
type req struct {
	key    string
	value  any
	ttl    time.Duration
	delete bool
}

/*
Async mirrors cache writes and deletes into a remote.Tier through a
buffered queue drained by a single background worker.

The queue never blocks the caller: when it is full the event is dropped.
A dropped write only means the remote tier serves a stale or missing
snapshot until the next write, which the data-fetch layer already treats
as an ordinary miss.
*/
type Async struct {
	tier remote.Tier
	ch   chan req
	wg   sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewAsync starts the worker. buffer bounds how many events may be pending
// before new ones are dropped.
func NewAsync(tier remote.Tier, buffer int) *Async {
	a := &Async{
		tier: tier,
		ch:   make(chan req, buffer),
	}

	a.wg.Add(1)
	go a.worker()

	return a
}

func (a *Async) OnWrite(key string, value any, ttl time.Duration) {
	a.enqueue(req{key: key, value: value, ttl: ttl})
}

func (a *Async) OnDelete(key string) {
	a.enqueue(req{key: key, delete: true})
}

// enqueue holds the read lock across the send so a concurrent Close
// cannot close the channel underneath it. Events after Close are dropped.
func (a *Async) enqueue(r req) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return
	}
	select {
	case a.ch <- r:
	default:
		// queue full: drop rather than stall the cache
	}
}

// worker drains the queue. Tier errors are ignored: the mirror is
// best-effort and the tier is never authoritative.
func (a *Async) worker() {
	defer a.wg.Done()

	for r := range a.ch {
		if r.delete {
			_ = a.tier.Delete(background, r.key)
			continue
		}
		b, err := json.Marshal(r.value)
		if err != nil {
			continue
		}
		_ = a.tier.Set(background, r.key, b, r.ttl)
	}
}

/*
Close stops accepting events and waits for the worker to drain what was
already queued. Without the drain, writes accepted just before shutdown
would be silently lost.
*/
func (a *Async) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	close(a.ch)
	a.mu.Unlock()
	a.wg.Wait()
}
