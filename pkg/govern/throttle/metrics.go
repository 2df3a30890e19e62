package throttle

import (
	"github.com/petsel/go-governor/pkg/govern"
	"github.com/petsel/go-governor/pkg/metrics"
)

// MetricsGovernor wraps a Governor with Prometheus metrics collection.
type MetricsGovernor struct {
	governor Governor
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a throttle governor that records calls, fires, and
// cancels under the given name.
func NewWithMetrics(fn govern.Func, cfg Config, name string, metricsConfig metrics.Config) Governor {
	if !metricsConfig.Enabled {
		return NewWithConfig(fn, cfg)
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	// Count fires at the moment of delivery, trailing fires included.
	instrumented := func(target any, args []any) {
		registry.ThrottleFires.WithLabelValues(name).Inc()
		if fn != nil {
			fn(target, args)
		}
	}

	return &MetricsGovernor{
		governor: NewWithConfig(instrumented, cfg),
		name:     name,
		registry: registry,
		enabled:  true,
	}
}

// Invoke requests a delivery and records the call.
func (mg *MetricsGovernor) Invoke(target any, args ...any) {
	if mg.enabled {
		mg.registry.ThrottleCalls.WithLabelValues(mg.name).Inc()
	}
	mg.governor.Invoke(target, args...)
}

// Cancel drops any pending trailing delivery and records the cancellation.
func (mg *MetricsGovernor) Cancel() {
	if mg.enabled {
		mg.registry.ThrottleCancels.WithLabelValues(mg.name).Inc()
	}
	mg.governor.Cancel()
}

// Pending reports whether a trailing delivery is currently scheduled.
func (mg *MetricsGovernor) Pending() bool {
	return mg.governor.Pending()
}
