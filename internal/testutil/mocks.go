package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/petsel/go-governor/pkg/govern/timing"
)

// MockClock implements timing.Clock for testing with controllable time.
// It is used across the governor tests to avoid actual time delays.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockClock creates a new MockClock starting at the given time.
// If zero time is provided, uses current time.
func NewMockClock(start time.Time) *MockClock {
	if start.IsZero() {
		start = time.Now()
	}
	return &MockClock{now: start}
}

// Now returns the current mock time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set sets the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the mock clock forward by the given duration without firing
// anything. Tests that pair the clock with a FakeScheduler should advance
// through the scheduler instead, so that due timers fire.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// fakeTimer is a scheduled callback tracked by a FakeScheduler. All fields
// are guarded by the owning scheduler's mutex.
type fakeTimer struct {
	seq     uint64
	due     time.Time
	fn      func()
	stopped bool
	fired   bool
}

// FakeScheduler implements timing.Scheduler against a MockClock. Callbacks
// fire synchronously from Advance, in due-time order, with the clock set to
// each callback's due time as it runs. Callbacks may schedule further timers;
// anything falling due within the advanced window also fires.
type FakeScheduler struct {
	mu     sync.Mutex
	clock  *MockClock
	seq    uint64
	timers []*fakeTimer
}

// NewFakeScheduler creates a FakeScheduler driving the given clock.
func NewFakeScheduler(clock *MockClock) *FakeScheduler {
	return &FakeScheduler{clock: clock}
}

// schedulerTimer adapts a fakeTimer to timing.Timer with stop routed
// through the scheduler's mutex.
type schedulerTimer struct {
	s *FakeScheduler
	t *fakeTimer
}

func (h schedulerTimer) Stop() bool {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if h.t.stopped || h.t.fired {
		return false
	}
	h.t.stopped = true
	return true
}

// Schedule arms a callback to fire once the clock has advanced by d.
func (s *FakeScheduler) Schedule(d time.Duration, fn func()) timing.Timer {
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &fakeTimer{
		seq: s.seq,
		due: s.clock.Now().Add(d),
		fn:  fn,
	}
	s.timers = append(s.timers, t)
	return schedulerTimer{s: s, t: t}
}

// Pending returns the number of armed, unfired timers.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing every due callback in
// due-time order (ties broken by scheduling order).
func (s *FakeScheduler) Advance(d time.Duration) {
	target := s.clock.Now().Add(d)
	s.AdvanceTo(target)
}

// AdvanceTo moves the clock forward to the given instant, firing every
// due callback along the way.
func (s *FakeScheduler) AdvanceTo(target time.Time) {
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.clock.Set(t.due)
		t.fn()
	}
	s.clock.Set(target)
}

// nextDue pops the earliest live timer due at or before target, or nil.
func (s *FakeScheduler) nextDue(target time.Time) *fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	s.timers = live

	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].due.Equal(s.timers[j].due) {
			return s.timers[i].seq < s.timers[j].seq
		}
		return s.timers[i].due.Before(s.timers[j].due)
	})

	for _, t := range s.timers {
		if !t.due.After(target) {
			t.fired = true
			return t
		}
	}
	return nil
}
