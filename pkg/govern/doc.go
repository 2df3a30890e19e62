/*
Package govern provides rate-control governors that transform a callable
into a time-governed variant.

This package holds the callable shapes shared by the governor packages:

  - throttle: deliver at most once per fixed interval, leading edge always,
    with optional trailing-call suppression
  - debounce: deliver only after a quiet period, optionally on the leading
    edge of a burst
  - clocked: repeat delivery on a fixed interval or cron schedule until
    explicitly terminated, optionally mediated by a per-tick controller

Each governor is an independent, pure transformation; governors share no
runtime state with each other and each governs exactly one callable.

Throttle:

	g := throttle.New(logScroll, 100*time.Millisecond)
	g.Invoke(nil, event) // first call fires immediately
	g.Invoke(nil, event) // coalesced onto one trailing fire

Debounce:

	g := debounce.New(runSearch, 250*time.Millisecond)
	g.Invoke(nil, "g")
	g.Invoke(nil, "go") // only "go" is delivered, 250ms after the last call

Clocked:

	g := clocked.New(poll, time.Second)
	g.Invoke(nil)        // start ticking
	defer g.Terminate()  // nothing else stops it

Time is injected through the timing package, so all governors can be driven
deterministically in tests. All governors are safe for concurrent use.
*/
package govern
