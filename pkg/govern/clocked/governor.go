package clocked

import (
	"sync"
	"time"

	gverrors "github.com/petsel/go-governor/pkg/common/errors"
	"github.com/petsel/go-governor/pkg/common/validation"
	"github.com/petsel/go-governor/pkg/govern"
	"github.com/petsel/go-governor/pkg/govern/timing"
)

// DefaultInterval replaces an absent, zero, or negative interval.
const DefaultInterval = 200 * time.Millisecond

// Tick describes the timekeeping state of one activation.
type Tick struct {
	// Interval is the delay until the next scheduled activation. For a
	// fixed-interval governor this is the configured period; for a
	// cron-driven governor it is the gap to the next schedule time.
	Interval time.Duration

	// StartedAt is when the current cycle was started.
	StartedAt time.Time

	// Now is the clock reading at this activation.
	Now time.Time

	// Count is the 1-based activation count within the current cycle.
	Count int
}

// Snapshot is the by-value state handed to a Controller on each tick.
type Snapshot struct {
	Tick   Tick
	Target any
	Args   []any // copy of the arguments captured at start
}

// Controller mediates one tick. It receives a snapshot of the governor's
// state plus two independently invocable operations: proceed forwards to
// the wrapped callable with whatever target and arguments the controller
// chooses, and terminate stops the cycle. A controller may call either,
// both, or neither.
type Controller func(snap Snapshot, proceed func(target any, args []any), terminate func())

// Governor repeatedly delivers the wrapped callable on a timer until
// explicitly terminated. Invoking an active governor restarts the cycle
// rather than stacking timers.
type Governor interface {
	// Invoke starts the cycle, terminating any cycle already running.
	// The target and arguments are captured and replayed on every tick.
	Invoke(target any, args ...any)

	// Terminate stops the cycle. Terminating an inactive governor is
	// a no-op.
	Terminate()

	// IsActive reports whether a cycle is running. Pure state query,
	// no side effects.
	IsActive() bool

	// Ticks returns the 1-based count of activations in the current
	// cycle, or 0 when inactive.
	Ticks() int
}

// Config holds configuration options for creating a clocked Governor.
type Config struct {
	// Interval is the tick period. Non-positive values are replaced by
	// DefaultInterval.
	Interval time.Duration

	// Target, when non-nil, is the fixed invocation context. It always
	// wins over the target supplied at call time.
	Target any

	// Controller, when non-nil, mediates every tick instead of the
	// wrapped callable being invoked directly.
	Controller Controller

	// Clock provides the current time. If nil, timing.SystemClock is used.
	Clock timing.Clock

	// Scheduler arms the tick timers. If nil, timing.SystemScheduler
	// is used.
	Scheduler timing.Scheduler
}

// periodFunc reports the delay from now until the next activation.
type periodFunc func(now time.Time) time.Duration

// governor implements Governor for both fixed-interval and cron-driven
// schedules.
type governor struct {
	mu     sync.Mutex
	fn     govern.Func
	ctrl   Controller
	fixed  any // fixed target, nil when the call-site target is used
	clock  timing.Clock
	sched  timing.Scheduler
	period periodFunc

	// gen invalidates ticks armed under earlier cycles.
	gen       uint64
	handle    timing.Timer
	active    bool
	count     int
	startedAt time.Time
	target    any
	args      []any
}

// New creates a clocked governor around fn with the given tick interval.
// A nil fn is accepted; ticks then govern nothing unless a controller
// forwards explicitly.
func New(fn govern.Func, interval time.Duration) Governor {
	return NewWithConfig(fn, Config{Interval: interval})
}

// NewWithConfig creates a clocked governor with custom configuration.
// Invalid durations are coerced, never rejected.
func NewWithConfig(fn govern.Func, cfg Config) Governor {
	interval := validation.NormalizeDuration(cfg.Interval, DefaultInterval)
	if cfg.Clock == nil {
		cfg.Clock = timing.SystemClock{}
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = timing.SystemScheduler{}
	}

	return &governor{
		fn:     fn,
		ctrl:   cfg.Controller,
		fixed:  cfg.Target,
		clock:  cfg.Clock,
		sched:  cfg.Scheduler,
		period: func(time.Time) time.Duration { return interval },
	}
}

// NewSafe creates a clocked governor with validation that returns an error
// instead of coercing, for callers that want strict construction.
func NewSafe(fn govern.Func, cfg Config) (Governor, error) {
	if fn == nil {
		return nil, gverrors.NewValidationError("clocked", "fn", nil, "must be invocable").
			WithHint("provide a non-nil callable")
	}
	if err := validation.ValidatePositiveDuration("clocked", "interval", cfg.Interval); err != nil {
		return nil, err
	}

	return NewWithConfig(fn, cfg), nil
}
