package throttle

import (
	"sync"
	"time"

	gverrors "github.com/petsel/go-governor/pkg/common/errors"
	"github.com/petsel/go-governor/pkg/common/validation"
	"github.com/petsel/go-governor/pkg/govern"
	"github.com/petsel/go-governor/pkg/govern/timing"
)

// DefaultThreshold replaces an absent, zero, or negative threshold.
const DefaultThreshold = 200 * time.Millisecond

// Governor delivers at most one invocation of the wrapped callable per
// threshold. The first call of a burst fires immediately; later calls in
// the same window coalesce onto a single trailing fire carrying the most
// recent arguments.
type Governor interface {
	// Invoke requests a delivery with the given target and arguments.
	// Exactly one delivery results, either immediately or once the
	// threshold has elapsed since the last fire; a later call supersedes
	// an earlier call's pending trailing delivery.
	Invoke(target any, args ...any)

	// Cancel drops any pending trailing delivery. It does not affect the
	// fire history, so the next call is still spaced against the last fire.
	Cancel()

	// Pending reports whether a trailing delivery is currently scheduled.
	Pending() bool
}

// Config holds configuration options for creating a throttle Governor.
type Config struct {
	// Threshold is the minimum spacing between deliveries. Non-positive
	// values are replaced by DefaultThreshold.
	Threshold time.Duration

	// SuppressTrailing makes a call arriving a full threshold after the
	// last fire deliver immediately as a fresh leading edge instead of
	// being scheduled on the trailing edge.
	SuppressTrailing bool

	// Target, when non-nil, is the fixed invocation context. It always
	// wins over the target supplied at call time.
	Target any

	// Clock provides the current time. If nil, timing.SystemClock is used.
	Clock timing.Clock

	// Scheduler arms trailing timers. If nil, timing.SystemScheduler is used.
	Scheduler timing.Scheduler
}

// governor implements Governor.
type governor struct {
	mu       sync.Mutex
	fn       govern.Func
	cfg      Config
	pending  timing.Timer
	lastFire time.Time
}

// New creates a throttle governor around fn with the given threshold.
// A nil fn is accepted; invocations then govern nothing.
func New(fn govern.Func, threshold time.Duration) Governor {
	return NewWithConfig(fn, Config{Threshold: threshold})
}

// NewWithConfig creates a throttle governor with custom configuration.
// Invalid durations are coerced, never rejected.
func NewWithConfig(fn govern.Func, cfg Config) Governor {
	cfg.Threshold = validation.NormalizeDuration(cfg.Threshold, DefaultThreshold)
	if cfg.Clock == nil {
		cfg.Clock = timing.SystemClock{}
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = timing.SystemScheduler{}
	}

	return &governor{fn: fn, cfg: cfg}
}

// NewSafe creates a throttle governor with validation that returns an error
// instead of coercing, for callers that want strict construction.
func NewSafe(fn govern.Func, cfg Config) (Governor, error) {
	if fn == nil {
		return nil, gverrors.NewValidationError("throttle", "fn", nil, "must be invocable").
			WithHint("provide a non-nil callable")
	}
	if err := validation.ValidatePositiveDuration("throttle", "threshold", cfg.Threshold); err != nil {
		return nil, err
	}

	return NewWithConfig(fn, cfg), nil
}
