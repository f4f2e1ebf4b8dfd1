package types

/*
Metrics is the set of events the cache reports about itself.
The cache calls these methods as things happen; implementations decide
what to do with them (count, export, ignore).
*/
type Metrics interface {

	// Hit is called when a read returns a live value.
	Hit()

	// Miss is called when a read finds no usable value.
	Miss()

	// Expire is called when a read finds an entry past its TTL
	// and lazily evicts it.
	Expire()

	// Invalidate is called for every entry removed by an explicit
	// invalidation (single key, prefix sweep, or clear).
	Invalidate()
}

/*
NoopMetrics ignores all events.

It is the default so the rest of the code never has to nil-check the
metrics sink.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()        {}
func (NoopMetrics) Miss()       {}
func (NoopMetrics) Expire()     {}
func (NoopMetrics) Invalidate() {}
