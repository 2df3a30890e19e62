package debounce

import (
	"sync"
	"time"

	gverrors "github.com/petsel/go-governor/pkg/common/errors"
	"github.com/petsel/go-governor/pkg/common/validation"
	"github.com/petsel/go-governor/pkg/govern"
	"github.com/petsel/go-governor/pkg/govern/timing"
)

// DefaultDelay replaces an absent, zero, or negative delay.
const DefaultDelay = 100 * time.Millisecond

// Governor delivers the wrapped callable only after a quiet period. Each
// call within an open window restarts the window; the eventual delivery
// carries the most recent call's target and arguments. In leading-edge mode
// the first call of a burst fires immediately instead, and further calls
// within the window are swallowed.
type Governor interface {
	// Invoke requests a delivery with the given target and arguments.
	Invoke(target any, args ...any)

	// Cancel closes the current window, dropping any pending delivery.
	// The next call starts a fresh burst.
	Cancel()

	// Pending reports whether a window is currently open.
	Pending() bool
}

// Config holds configuration options for creating a debounce Governor.
type Config struct {
	// Delay is the quiet period required before delivery. Non-positive
	// values are replaced by DefaultDelay.
	Delay time.Duration

	// Leading fires on the first call of a burst instead of after the
	// quiet period. The window then stays closed to further deliveries
	// until Delay has elapsed since the leading fire.
	Leading bool

	// Target, when non-nil, is the fixed invocation context. It always
	// wins over the target supplied at call time.
	Target any

	// Scheduler arms the window timers. If nil, timing.SystemScheduler
	// is used.
	Scheduler timing.Scheduler
}

// governor implements Governor.
type governor struct {
	mu     sync.Mutex
	fn     govern.Func
	cfg    Config
	window timing.Timer // non-nil exactly while a window is open
}

// New creates a debounce governor around fn with the given delay.
// A nil fn is accepted; invocations then govern nothing.
func New(fn govern.Func, delay time.Duration) Governor {
	return NewWithConfig(fn, Config{Delay: delay})
}

// NewWithConfig creates a debounce governor with custom configuration.
// Invalid durations are coerced, never rejected.
func NewWithConfig(fn govern.Func, cfg Config) Governor {
	cfg.Delay = validation.NormalizeDuration(cfg.Delay, DefaultDelay)
	if cfg.Scheduler == nil {
		cfg.Scheduler = timing.SystemScheduler{}
	}

	return &governor{fn: fn, cfg: cfg}
}

// NewSafe creates a debounce governor with validation that returns an error
// instead of coercing, for callers that want strict construction.
func NewSafe(fn govern.Func, cfg Config) (Governor, error) {
	if fn == nil {
		return nil, gverrors.NewValidationError("debounce", "fn", nil, "must be invocable").
			WithHint("provide a non-nil callable")
	}
	if err := validation.ValidatePositiveDuration("debounce", "delay", cfg.Delay); err != nil {
		return nil, err
	}

	return NewWithConfig(fn, cfg), nil
}
