/*
Package governor provides rate-control wrappers that govern when a wrapped
callable actually runs: throttling, debouncing, and clock-driven repetition.

Governors (pkg/govern):
  - throttle: Leading-edge delivery with trailing coalescing
  - debounce: Delivery only after a quiet period, trailing or leading
  - clocked: Repeated delivery on an interval or cron schedule

Supporting packages:
  - pkg/govern/timing: Clock and Scheduler abstractions for testable time
  - pkg/metrics: Prometheus instrumentation for governed callables
  - pkg/common/errors, pkg/common/validation: shared error and option handling

Example usage:

	import (
		"github.com/petsel/go-governor/pkg/govern/debounce"
		"github.com/petsel/go-governor/pkg/govern/throttle"
	)

	onScroll, _ := throttle.Wrap(renderViewport, 100*time.Millisecond)
	onInput, _ := debounce.Wrap(runSearch, 250*time.Millisecond)

	onScroll(nil, offset) // at most one render per 100ms, last offset wins
	onInput(nil, query)   // search runs once typing pauses for 250ms
*/
package governor
