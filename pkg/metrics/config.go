package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Config holds configuration for metrics collection.
type Config struct {
	// Enabled controls whether metrics collection is active.
	Enabled bool

	// Registry, when non-nil, gets a fresh set of metric families
	// registered on it. Leave nil to share DefaultRegistry; passing the
	// same registerer to more than one governor would register the same
	// families twice.
	Registry prometheus.Registerer
}

// DefaultConfig returns a metrics configuration that records into the
// default registry.
func DefaultConfig() Config {
	return Config{Enabled: true}
}
