package clocked

import (
	"time"

	"github.com/robfig/cron/v3"

	gverrors "github.com/petsel/go-governor/pkg/common/errors"
	"github.com/petsel/go-governor/pkg/common/validation"
	"github.com/petsel/go-governor/pkg/govern"
	"github.com/petsel/go-governor/pkg/govern/timing"
)

// CronConfig holds configuration options for creating a cron-driven
// clocked Governor.
type CronConfig struct {
	// Expression is a cron expression with seconds granularity, e.g.
	// "*/5 * * * * *" for every five seconds.
	Expression string

	// Location resolves the schedule's wall-clock times. If nil,
	// time.Local is used.
	Location *time.Location

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

// NewCron creates a clocked governor whose ticks occur at the activation
// times of a cron schedule instead of a fixed interval. The state machine
// is otherwise identical: Invoke (re)starts the cycle, Terminate stops it.
//
// Unlike interval coercion, a malformed expression is a constructor-argument
// error and is reported rather than silently replaced.
func NewCron(fn govern.Func, cfg CronConfig) (Governor, error) {
	if err := validation.ValidateNotEmpty("clocked", "cron", cfg.Expression); err != nil {
		return nil, err
	}

	parser := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
	)
	schedule, err := parser.Parse(cfg.Expression)
	if err != nil {
		return nil, gverrors.NewOperationError("clocked", "ParseSchedule", err).
			WithContext(cfg.Expression)
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}
	if cfg.Clock == nil {
		cfg.Clock = timing.SystemClock{}
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = timing.SystemScheduler{}
	}

	return &governor{
		fn:    fn,
		ctrl:  cfg.Controller,
		fixed: cfg.Target,
		clock: cfg.Clock,
		sched: cfg.Scheduler,
		period: func(now time.Time) time.Duration {
			return schedule.Next(now.In(location)).Sub(now)
		},
	}, nil
}
