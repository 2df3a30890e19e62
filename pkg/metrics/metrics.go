// Package metrics provides Prometheus instrumentation for go-governor
// components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for go-governor components.
type Registry struct {
	// Throttle Metrics
	ThrottleCalls   *prometheus.CounterVec
	ThrottleFires   *prometheus.CounterVec
	ThrottleCancels *prometheus.CounterVec

	// Debounce Metrics
	DebounceCalls   *prometheus.CounterVec
	DebounceFires   *prometheus.CounterVec
	DebounceCancels *prometheus.CounterVec

	// Clocked Metrics
	ClockedStarts       *prometheus.CounterVec
	ClockedTicks        *prometheus.CounterVec
	ClockedTerminations *prometheus.CounterVec
	ClockedActive       *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by go-governor
// components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus
// registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Throttle Metrics
		ThrottleCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "governor",
				Subsystem: "throttle",
				Name:      "calls_total",
				Help:      "Total number of calls made to throttled callables",
			},
			[]string{"governor_name"},
		),

		ThrottleFires: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "governor",
				Subsystem: "throttle",
				Name:      "fires_total",
				Help:      "Total number of deliveries to wrapped callables",
			},
			[]string{"governor_name"},
		),

		ThrottleCancels: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "governor",
				Subsystem: "throttle",
				Name:      "cancels_total",
				Help:      "Total number of explicitly cancelled trailing deliveries",
			},
			[]string{"governor_name"},
		),

		// Debounce Metrics
		DebounceCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "governor",
				Subsystem: "debounce",
				Name:      "calls_total",
				Help:      "Total number of calls made to debounced callables",
			},
			[]string{"governor_name"},
		),

		DebounceFires: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "governor",
				Subsystem: "debounce",
				Name:      "fires_total",
				Help:      "Total number of deliveries to wrapped callables",
			},
			[]string{"governor_name"},
		),

		DebounceCancels: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "governor",
				Subsystem: "debounce",
				Name:      "cancels_total",
				Help:      "Total number of explicitly cancelled pending deliveries",
			},
			[]string{"governor_name"},
		),

		// Clocked Metrics
		ClockedStarts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "governor",
				Subsystem: "clocked",
				Name:      "starts_total",
				Help:      "Total number of clocked governor (re)starts",
			},
			[]string{"governor_name"},
		),

		ClockedTicks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "governor",
				Subsystem: "clocked",
				Name:      "ticks_total",
				Help:      "Total number of clocked governor ticks",
			},
			[]string{"governor_name"},
		),

		ClockedTerminations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "governor",
				Subsystem: "clocked",
				Name:      "terminations_total",
				Help:      "Total number of clocked governor terminations",
			},
			[]string{"governor_name"},
		),

		ClockedActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "governor",
				Subsystem: "clocked",
				Name:      "active",
				Help:      "Whether a clocked governor is currently active (1) or not (0)",
			},
			[]string{"governor_name"},
		),
	}
}
