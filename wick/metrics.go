package wick

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects per-Theorem counters. Build one with NewMetrics and
// pass it through WithMetrics.
type Metrics struct {
	// Calls counts Contract calls on single operator products.
	Calls prometheus.Counter

	// Elementary counts generated elementary contractions.
	Elementary prometheus.Counter

	// Composites counts composite contractions inside the rank window.
	Composites prometheus.Counter

	// Terms counts evaluated terms before merging.
	Terms prometheus.Counter

	// Duration observes the wall time of Contract calls.
	Duration prometheus.Histogram
}

// NewMetrics registers the collectors on reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Calls: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wick",
			Subsystem: "theorem",
			Name:      "contract_calls_total",
			Help:      "Total Contract calls on operator products",
		}),
		Elementary: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wick",
			Subsystem: "theorem",
			Name:      "elementary_contractions_total",
			Help:      "Total elementary contractions generated",
		}),
		Composites: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wick",
			Subsystem: "theorem",
			Name:      "composite_contractions_total",
			Help:      "Total composite contractions inside the rank window",
		}),
		Terms: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wick",
			Subsystem: "theorem",
			Name:      "terms_total",
			Help:      "Total terms evaluated before merging",
		}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wick",
			Subsystem: "theorem",
			Name:      "contract_duration_seconds",
			Help:      "Wall time of Contract calls in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}
