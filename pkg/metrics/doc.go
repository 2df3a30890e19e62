// Package metrics provides Prometheus instrumentation for go-governor
// components.
//
// The metrics package provides automatic instrumentation for:
//   - Throttle governors (calls, fires, cancels)
//   - Debounce governors (calls, fires, cancels)
//   - Clocked governors (starts, ticks, terminations, active state)
//
// Enable metrics by using the metrics-enabled constructors:
//
//	g := throttle.NewWithMetrics(onScroll, cfg, "scroll_log", metrics.DefaultConfig())
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{Enabled: true, Registry: registry}
package metrics
