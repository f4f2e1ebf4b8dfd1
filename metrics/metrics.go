// Package metrics exports cache activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder implements the cache's Metrics interface on top of Prometheus
// counters, plus a gauge for resident entries that callers update from
// cache stats.
type Recorder struct {
	Hits          prometheus.Counter
	Misses        prometheus.Counter
	Expirations   prometheus.Counter
	Invalidations prometheus.Counter
	Entries       prometheus.Gauge
}

// New creates a Recorder registered under the given namespace. A nil
// registerer means the default registry; tests pass their own so repeated
// construction doesn't collide.
func New(namespace string, reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Recorder{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Reads served from a live cache entry",
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Reads that found no usable cache entry",
		}),
		Expirations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "expirations_total",
			Help:      "Entries lazily evicted after their TTL elapsed",
		}),
		Invalidations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "invalidations_total",
			Help:      "Entries removed by explicit invalidation",
		}),
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Resident cache entries, live or awaiting eviction",
		}),
	}
}

func (r *Recorder) Hit()        { r.Hits.Inc() }
func (r *Recorder) Miss()       { r.Misses.Inc() }
func (r *Recorder) Expire()     { r.Expirations.Inc() }
func (r *Recorder) Invalidate() { r.Invalidations.Inc() }

// SetEntries records the resident entry count from a Stats snapshot.
func (r *Recorder) SetEntries(n int) { r.Entries.Set(float64(n)) }

// Handler serves the default registry at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
