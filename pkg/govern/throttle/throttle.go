package throttle

import "github.com/petsel/go-governor/pkg/govern/timing"

// Invoke requests a delivery with the given target and arguments.
func (g *governor) Invoke(target any, args ...any) {
	g.mu.Lock()

	if g.cfg.Target != nil {
		target = g.cfg.Target
	}

	// A new call always supersedes any pending trailing delivery,
	// including on the suppression path below.
	g.cancelPending()

	now := g.cfg.Clock.Now()

	if g.lastFire.IsZero() ||
		(g.cfg.SuppressTrailing && now.Sub(g.lastFire) >= g.cfg.Threshold) {
		g.lastFire = now
		fn := g.fn
		g.mu.Unlock()

		if fn != nil {
			fn(target, args)
		}
		return
	}

	delay := g.cfg.Threshold - now.Sub(g.lastFire)
	if delay < 0 {
		delay = 0
	}
	fireAt := now.Add(delay)
	fn := g.fn

	var handle timing.Timer
	handle = g.cfg.Scheduler.Schedule(delay, func() {
		g.mu.Lock()
		if g.pending != handle {
			// Superseded after the timer was already committed to fire.
			g.mu.Unlock()
			return
		}
		g.pending = nil
		g.lastFire = fireAt
		g.mu.Unlock()

		if fn != nil {
			fn(target, args)
		}
	})
	g.pending = handle
	g.mu.Unlock()
}

// Cancel drops any pending trailing delivery.
func (g *governor) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelPending()
}

// Pending reports whether a trailing delivery is currently scheduled.
func (g *governor) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending != nil
}

// cancelPending stops and clears the trailing timer. Callers must hold g.mu.
func (g *governor) cancelPending() {
	if g.pending != nil {
		g.pending.Stop()
		g.pending = nil
	}
}
