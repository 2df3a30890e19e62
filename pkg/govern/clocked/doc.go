/*
Package clocked provides a governor that repeatedly delivers a wrapped
callable on a timer until explicitly terminated.

Invoking the governor captures the call's target and arguments and starts
a cycle ticking at the configured interval; each tick replays the captured
state to the callable. Invoking an active governor restarts the cycle:
counters reset and ticks armed under the old cycle never fire. Nothing
stops a cycle except Terminate, so callers own the lifecycle:

	g := clocked.New(poll, time.Second)
	g.Invoke(nil, endpoint)
	defer g.Terminate()

A Controller turns each tick into a decision point. It receives a by-value
Snapshot of the cycle state plus two explicit operations, and can implement
arbitrary continuation policies without the governor knowing about them:

	g := clocked.NewWithConfig(report, clocked.Config{
		Interval: time.Second,
		Controller: func(snap clocked.Snapshot, proceed func(target any, args []any), terminate func()) {
			if snap.Tick.Count > 5 {
				terminate()
				return
			}
			proceed(snap.Target, snap.Args)
		},
	})

NewCron builds the same state machine driven by a cron schedule (seconds
granularity) instead of a fixed interval:

	g, err := clocked.NewCron(rotate, clocked.CronConfig{
		Expression: "0 0 * * * *", // top of every hour
	})

Invalid intervals are silently replaced by DefaultInterval; use NewSafe for
strict construction. All operations are safe for concurrent use.
*/
package clocked
