package clocked

import "time"

// Invoke starts the cycle, terminating any cycle already running.
func (g *governor) Invoke(target any, args ...any) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active {
		g.stopLocked()
	}

	if g.fixed != nil {
		target = g.fixed
	}

	now := g.clock.Now()
	g.active = true
	g.count = 0
	g.startedAt = now
	g.target = target
	g.args = append([]any(nil), args...)

	g.gen++
	gen := g.gen
	g.handle = g.sched.Schedule(g.period(now), func() { g.tick(gen) })
}

// Terminate stops the cycle. Terminating an inactive governor is a no-op.
func (g *governor) Terminate() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.active {
		return
	}
	g.stopLocked()
}

// IsActive reports whether a cycle is running.
func (g *governor) IsActive() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Ticks returns the activation count of the current cycle, 0 when inactive.
func (g *governor) Ticks() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.active {
		return 0
	}
	return g.count
}

// stopLocked cancels the armed tick and resets the cycle state. Bumping the
// generation guarantees that a tick already committed to fire is dropped.
// Callers must hold g.mu.
func (g *governor) stopLocked() {
	if g.handle != nil {
		g.handle.Stop()
		g.handle = nil
	}
	g.active = false
	g.count = 0
	g.startedAt = time.Time{}
	g.target = nil
	g.args = nil
	g.gen++
}

// tick runs one activation of cycle gen: re-arm first, then hand off to the
// controller or deliver directly. The callable and controller always run
// outside the lock so they may re-enter the governor.
func (g *governor) tick(gen uint64) {
	g.mu.Lock()
	if !g.active || gen != g.gen {
		g.mu.Unlock()
		return
	}

	g.count++
	now := g.clock.Now()
	delay := g.period(now)
	g.handle = g.sched.Schedule(delay, func() { g.tick(gen) })

	snap := Snapshot{
		Tick: Tick{
			Interval:  delay,
			StartedAt: g.startedAt,
			Now:       now,
			Count:     g.count,
		},
		Target: g.target,
		Args:   append([]any(nil), g.args...),
	}
	fn := g.fn
	ctrl := g.ctrl
	target := g.target
	args := g.args
	g.mu.Unlock()

	if ctrl != nil {
		ctrl(snap, g.proceed, g.Terminate)
		return
	}
	if fn != nil {
		fn(target, args)
	}
}

// proceed forwards to the wrapped callable. It is handed to controllers as
// the bound original callable and has no effect on the cycle state.
func (g *governor) proceed(target any, args []any) {
	if g.fn != nil {
		g.fn(target, args)
	}
}
