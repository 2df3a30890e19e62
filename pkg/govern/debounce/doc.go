/*
Package debounce provides a governor that delivers a wrapped callable only
after a quiet period has elapsed since the last call.

In the default (trailing) mode, each call restarts the window; once delay
has passed with no further calls, the callable fires once with the last
call's target and arguments. This is useful when calls may be triggered
rapidly (user input, filesystem events) but the underlying operation is
expensive and only the final state matters.

	g := debounce.New(func(target any, args []any) {
		search(args[0].(string))
	}, 250*time.Millisecond)

	g.Invoke(nil, "g")
	g.Invoke(nil, "go")
	g.Invoke(nil, "gov") // only "gov" is delivered, 250ms after this call

In leading-edge mode the first call of a burst fires immediately; further
calls within the window are swallowed and do not extend it, so the governor
cannot fire again until delay has elapsed since the leading fire:

	g := debounce.NewWithConfig(fn, debounce.Config{
		Delay:   250 * time.Millisecond,
		Leading: true,
	})

The functional form mirrors the constructor and degenerates to identity for
a nil callable:

	governed, cancel := debounce.Wrap(fn, 250*time.Millisecond)

A target fixed at wrap time always wins over the target supplied at call
time. Invalid delays are silently replaced by DefaultDelay; use NewSafe for
strict construction. All operations are safe for concurrent use.
*/
package debounce
