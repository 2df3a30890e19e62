package throttle

import (
	"time"

	"github.com/petsel/go-governor/pkg/govern"
	"github.com/petsel/go-governor/pkg/govern/timing"
)

// Option configures a governed callable created by Wrap.
type Option func(*Config)

// WithSuppressTrailing makes calls arriving a full threshold after the last
// fire deliver immediately instead of on the trailing edge.
func WithSuppressTrailing() Option {
	return func(c *Config) {
		c.SuppressTrailing = true
	}
}

// WithTarget fixes the invocation context at wrap time. The fixed target
// always wins over the one supplied at call time.
func WithTarget(target any) Option {
	return func(c *Config) {
		c.Target = target
	}
}

// WithClock sets a custom Clock implementation.
func WithClock(clock timing.Clock) Option {
	return func(c *Config) {
		c.Clock = clock
	}
}

// WithScheduler sets a custom Scheduler implementation.
func WithScheduler(scheduler timing.Scheduler) Option {
	return func(c *Config) {
		c.Scheduler = scheduler
	}
}

// Wrap returns the governed form of fn together with a cancel function that
// drops any pending trailing delivery. The cancel function is not required
// to be called and may be called multiple times.
//
// If fn is nil the wrapper degenerates: nothing is wrapped and a nil
// Governed is returned, along with a no-op cancel.
func Wrap(fn govern.Func, threshold time.Duration, opts ...Option) (govern.Governed, func()) {
	if fn == nil {
		return nil, func() {}
	}

	cfg := Config{Threshold: threshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := NewWithConfig(fn, cfg)
	return g.Invoke, g.Cancel
}
