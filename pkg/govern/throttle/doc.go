/*
Package throttle provides a governor that delivers at most one invocation of
a wrapped callable per threshold interval.

The first call of a burst always fires immediately (leading edge). Later
calls arriving within the threshold are coalesced onto a single trailing
delivery carrying the most recent call's target and arguments; every new
call supersedes the previous pending trailing delivery.

Basic usage:

	g := throttle.New(func(target any, args []any) {
		render(args[0].(Position))
	}, 100*time.Millisecond)

	g.Invoke(nil, pos) // fires immediately
	g.Invoke(nil, pos) // coalesced; fires once the threshold elapses

With trailing suppression, a call arriving a full threshold after the last
fire is treated as a fresh leading edge and fires immediately instead of
being delayed:

	g := throttle.NewWithConfig(fn, throttle.Config{
		Threshold:        100 * time.Millisecond,
		SuppressTrailing: true,
	})

The functional form mirrors the constructor and degenerates to identity for
a nil callable:

	governed, cancel := throttle.Wrap(fn, 100*time.Millisecond)
	governed(nil, pos)
	cancel() // drop a pending trailing delivery, if any

A target fixed at wrap time always wins over the target supplied at call
time. Invalid thresholds are silently replaced by DefaultThreshold; use
NewSafe for strict construction. All operations are safe for concurrent use.
*/
package throttle
