package debounce

import "github.com/petsel/go-governor/pkg/govern/timing"

// Invoke requests a delivery with the given target and arguments.
func (g *governor) Invoke(target any, args ...any) {
	g.mu.Lock()

	if g.cfg.Target != nil {
		target = g.cfg.Target
	}

	if g.cfg.Leading {
		if g.window != nil {
			// Burst in progress: swallowed. The window is fixed from the
			// leading fire and is not extended by later calls.
			g.mu.Unlock()
			return
		}
		g.window = g.armWindowClose()
		fn := g.fn
		g.mu.Unlock()

		if fn != nil {
			fn(target, args)
		}
		return
	}

	// Trailing mode: every call replaces the pending delivery and
	// restarts the window with the latest target and arguments.
	if g.window != nil {
		g.window.Stop()
	}
	g.window = g.armDelivery(target, args)
	g.mu.Unlock()
}

// Cancel closes the current window, dropping any pending delivery.
func (g *governor) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.window != nil {
		g.window.Stop()
		g.window = nil
	}
}

// Pending reports whether a window is currently open.
func (g *governor) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.window != nil
}

// armDelivery schedules a trailing delivery that closes the window when it
// runs. Callers must hold g.mu.
func (g *governor) armDelivery(target any, args []any) timing.Timer {
	var handle timing.Timer
	handle = g.cfg.Scheduler.Schedule(g.cfg.Delay, func() {
		g.mu.Lock()
		if g.window != handle {
			// Superseded after the timer was already committed to fire.
			g.mu.Unlock()
			return
		}
		g.window = nil
		fn := g.fn
		g.mu.Unlock()

		if fn != nil {
			fn(target, args)
		}
	})
	return handle
}

// armWindowClose schedules the leading-mode re-arm whose only job is to
// close the window without invoking the callable. Callers must hold g.mu.
func (g *governor) armWindowClose() timing.Timer {
	var handle timing.Timer
	handle = g.cfg.Scheduler.Schedule(g.cfg.Delay, func() {
		g.mu.Lock()
		if g.window == handle {
			g.window = nil
		}
		g.mu.Unlock()
	})
	return handle
}
