package clocked

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

// NewWithMetrics creates a clocked governor that records starts, ticks,
// terminations, and the active state under the given name.
func NewWithMetrics(fn govern.Func, cfg Config, name string, metricsConfig metrics.Config) Governor {
	if !metricsConfig.Enabled {
		return NewWithConfig(fn, cfg)
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	// Count ticks at hand-off time, whether or not the wrapped callable
	// ends up being invoked.
	if ctrl := cfg.Controller; ctrl != nil {
		cfg.Controller = func(snap Snapshot, proceed func(target any, args []any), terminate func()) {
			registry.ClockedTicks.WithLabelValues(name).Inc()
			ctrl(snap, proceed, terminate)
		}
	} else {
		inner := fn
		fn = func(target any, args []any) {
			registry.ClockedTicks.WithLabelValues(name).Inc()
			if inner != nil {
				inner(target, args)
			}
		}
	}

	return &MetricsGovernor{
		governor: NewWithConfig(fn, cfg),
		name:     name,
		registry: registry,
		enabled:  true,
	}
}

// Invoke starts the cycle and records the (re)start.
func (mg *MetricsGovernor) Invoke(target any, args ...any) {
	if mg.enabled {
		mg.registry.ClockedStarts.WithLabelValues(mg.name).Inc()
		mg.registry.ClockedActive.WithLabelValues(mg.name).Set(1)
	}
	mg.governor.Invoke(target, args...)
}

// Terminate stops the cycle and records the termination.
func (mg *MetricsGovernor) Terminate() {
	if mg.enabled && mg.governor.IsActive() {
		mg.registry.ClockedTerminations.WithLabelValues(mg.name).Inc()
		mg.registry.ClockedActive.WithLabelValues(mg.name).Set(0)
	}
	mg.governor.Terminate()
}

// IsActive reports whether a cycle is running.
func (mg *MetricsGovernor) IsActive() bool {
	return mg.governor.IsActive()
}

// Ticks returns the activation count of the current cycle, 0 when inactive.
func (mg *MetricsGovernor) Ticks() int {
	return mg.governor.Ticks()
}
