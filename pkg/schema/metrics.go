package schema

import "github.com/prometheus/client_golang/prometheus"

// cacheMetrics instruments cache lookups. A nil receiver is a no-op, so the
// Cache can call through unconditionally.
type cacheMetrics struct {
	hits   prometheus.Counter
	misses prometheus.Counter
}

// WithMetrics registers hit/miss counters on the given registerer and attaches
// them to the cache.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Cache) {
		m := &cacheMetrics{
			hits: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "covenant",
				Subsystem: "schema_cache",
				Name:      "hits_total",
				Help:      "Schema cache lookups served from the cache.",
			}),
			misses: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "covenant",
				Subsystem: "schema_cache",
				Name:      "misses_total",
				Help:      "Schema cache lookups that triggered generation.",
			}),
		}
		reg.MustRegister(m.hits, m.misses)
		c.metrics = m
	}
}

func (m *cacheMetrics) hit() {
	if m == nil {
		return
	}
	m.hits.Inc()
}

func (m *cacheMetrics) miss() {
	if m == nil {
		return
	}
	m.misses.Inc()
}
