// Package metrics exposes Prometheus instruments for the dispatch loop and
// the timing providers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

const namespace = "adhan"

// Metrics holds all application metrics
type Metrics struct {
	Registry *prometheus.Registry

	// Dispatch metrics
	TicksTotal        *prometheus.CounterVec
	TickDuration      prometheus.Histogram
	WindowStates      *prometheus.CounterVec
	DeliveriesTotal   *prometheus.CounterVec
	SubscriberErrors  prometheus.Counter
	SubscribersPruned prometheus.Counter

	// Timing provider metrics
	ProviderRequests  *prometheus.CounterVec
	ProviderLatency   *prometheus.HistogramVec
	ProviderFallbacks prometheus.Counter
}

// New creates all metrics on a dedicated registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return newWithRegistry(reg)
}

func newWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		TicksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "ticks_total",
			Help:      "Total number of dispatch ticks by result",
		}, []string{"result"}),
		TickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "tick_duration_seconds",
			Help:      "Time spent evaluating all subscribers in one tick",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}),
		WindowStates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "window_states_total",
			Help:      "Delivery window classifications of evaluated subscribers",
		}, []string{"state"}),
		DeliveriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "deliveries_total",
			Help:      "Push delivery attempts by outcome",
		}, []string{"outcome"}),
		SubscriberErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "subscriber_errors_total",
			Help:      "Subscribers whose evaluation failed inside a tick",
		}),
		SubscribersPruned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "subscribers_pruned_total",
			Help:      "Subscribers removed after a permanent delivery failure",
		}),

		ProviderRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "timing",
			Name:      "provider_requests_total",
			Help:      "Upstream timing provider requests by provider and status",
		}, []string{"provider", "status"}),
		ProviderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "timing",
			Name:      "provider_request_duration_seconds",
			Help:      "Duration of upstream timing provider requests",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		ProviderFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "timing",
			Name:      "regional_fallbacks_total",
			Help:      "Regional lookups answered by the generic provider instead",
		}),
	}
}

// NewNop returns metrics registered on a throwaway registry, for tests and tools.
func NewNop() *Metrics {
	return newWithRegistry(prometheus.NewRegistry())
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
