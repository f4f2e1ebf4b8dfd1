package engine

import (
	"time"

	"github.com/antony0531/real-estate-tracker-sub002/expiration"
	"github.com/antony0531/real-estate-tracker-sub002/mirror"
	"github.com/antony0531/real-estate-tracker-sub002/types"
)

// TTLs is the per-category time-to-live table. Categories without their own
// entry (rooms) use Default.
type TTLs struct {
	Default   time.Duration
	Projects  time.Duration
	Dashboard time.Duration
	Expenses  time.Duration
}

// DefaultTTLs returns the stock table: projects 10m, dashboard stats 2m,
// expenses 3m, everything else 5m.
func DefaultTTLs() TTLs {
	return TTLs{
		Default:   5 * time.Minute,
		Projects:  10 * time.Minute,
		Dashboard: 2 * time.Minute,
		Expenses:  3 * time.Minute,
	}
}

/*
Engine is the policy layer of the cache. It decides behavior, not storage:

- when an entry counts as expired
- which TTL a category gets
- what gets reported to metrics
- whether writes are mirrored to a remote tier

It holds no entries and takes no locks, so the store may call into it
while holding its own lock without risking re-entry.
*/
type Engine struct {

	// Expiration decides entry liveness. Never nil.
	Expiration expiration.Strategy

	// Metrics receives cache events. Never nil.
	Metrics types.Metrics

	// Mirror propagates writes to a remote tier. May be nil, in which
	// case the cache is memory-only.
	Mirror mirror.Policy

	// Clock is the engine's wall-clock source. Tests substitute a fake.
	Clock func() time.Time

	ttls TTLs
}

/*
NewEngine creates an Engine. Nil metrics and a zero TTL table are replaced
with no-op metrics and the stock table, so callers and the store never
need defensive checks.
*/
func NewEngine(exp expiration.Strategy, metrics types.Metrics, mir mirror.Policy, ttls TTLs) *Engine {
	if exp == nil {
		exp = expiration.ExpireAfterWrite{}
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}

	def := DefaultTTLs()
	if ttls.Default <= 0 {
		ttls.Default = def.Default
	}
	if ttls.Projects <= 0 {
		ttls.Projects = def.Projects
	}
	if ttls.Dashboard <= 0 {
		ttls.Dashboard = def.Dashboard
	}
	if ttls.Expenses <= 0 {
		ttls.Expenses = def.Expenses
	}

	return &Engine{
		Expiration: exp,
		Metrics:    metrics,
		Mirror:     mir,
		Clock:      time.Now,
		ttls:       ttls,
	}
}

// TTLs returns the engine's TTL table.
func (e *Engine) TTLs() TTLs {
	return e.ttls
}

// Now reads the engine's clock.
func (e *Engine) Now() time.Time {
	return e.Clock()
}

// IsExpired checks an entry against the expiration strategy at the current
// clock reading.
func (e *Engine) IsExpired(ent *types.Entry) bool {
	return e.Expiration.IsExpired(ent, e.Clock())
}

// OnWrite stamps the entry's expiration baseline and forwards the write to
// the mirror, if any. A non-positive TTL is replaced with the default.
func (e *Engine) OnWrite(ent *types.Entry) {
	if ent.TTL <= 0 {
		ent.TTL = e.ttls.Default
	}
	e.Expiration.OnWrite(ent, e.Clock())

	if e.Mirror != nil {
		e.Mirror.OnWrite(ent.Key, ent.Value, ent.TTL)
	}
}

// OnDelete forwards an explicit removal to the mirror, if any.
func (e *Engine) OnDelete(key string) {
	if e.Mirror != nil {
		e.Mirror.OnDelete(key)
	}
}

// Close shuts down the mirror, flushing pending propagations.
func (e *Engine) Close() {
	if e.Mirror != nil {
		e.Mirror.Close()
	}
}
