package throttle

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/petsel/go-governor/internal/testutil"
)

// TestThrottleInvariants drives a governor with arbitrary call gaps and
// checks the properties that must hold for every schedule:
//   - deliveries never outnumber calls
//   - consecutive deliveries are spaced at least a threshold apart
//   - once quiet, no timer is left pending and the last delivery carries
//     the last call's arguments
func TestThrottleInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		threshold := time.Duration(rapid.IntRange(10, 500).Draw(t, "threshold_ms")) * time.Millisecond
		suppress := rapid.Bool().Draw(t, "suppress_trailing")
		gaps := rapid.SliceOfN(rapid.IntRange(0, 700), 1, 40).Draw(t, "gaps_ms")

		clock := testutil.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		sched := testutil.NewFakeScheduler(clock)
		rec := &recorder{clock: clock}
		g := NewWithConfig(rec.fn, Config{
			Threshold:        threshold,
			SuppressTrailing: suppress,
			Clock:            clock,
			Scheduler:        sched,
		})

		calls := 0
		var lastArg int
		for i, gap := range gaps {
			sched.Advance(time.Duration(gap) * time.Millisecond)
			g.Invoke(nil, i)
			calls++
			lastArg = i
		}

		// Quiet period long enough to flush any trailing delivery.
		sched.Advance(2 * threshold)

		if len(rec.fires) == 0 {
			t.Fatalf("no deliveries for %d calls", calls)
		}
		if len(rec.fires) > calls {
			t.Fatalf("%d deliveries exceed %d calls", len(rec.fires), calls)
		}
		for i := 1; i < len(rec.fires); i++ {
			spacing := rec.fires[i].at.Sub(rec.fires[i-1].at)
			if spacing < threshold {
				t.Fatalf("deliveries %d and %d spaced %v apart, want >= %v",
					i-1, i, spacing, threshold)
			}
		}
		last := rec.fires[len(rec.fires)-1]
		if last.args[0] != lastArg {
			t.Fatalf("last delivery carried %v, want %v", last.args[0], lastArg)
		}
		if sched.Pending() != 0 {
			t.Fatalf("%d timers still pending after quiet period", sched.Pending())
		}
	})
}
