package clocked_test

import (
	"fmt"
	"time"

	"github.com/petsel/go-governor/pkg/govern/clocked"
)

// Example demonstrates a basic repeating cycle.
func Example() {
	g := clocked.New(func(target any, args []any) {
		fmt.Printf("tick for %v\n", args[0])
	}, 50*time.Millisecond)

	g.Invoke(nil, "job-42")
	time.Sleep(120 * time.Millisecond)
	g.Terminate()

	// Output:
	// tick for job-42
	// tick for job-42
}

// Example_controller demonstrates mediated ticks: the controller decides
// per tick whether to forward and when to stop the cycle.
func Example_controller() {
	g := clocked.NewWithConfig(func(target any, args []any) {
		fmt.Printf("attempt %v\n", args[0])
	}, clocked.Config{
		Interval: 30 * time.Millisecond,
		Controller: func(snap clocked.Snapshot, proceed func(target any, args []any), terminate func()) {
			proceed(snap.Target, []any{snap.Tick.Count})
			if snap.Tick.Count == 3 {
				terminate()
			}
		},
	})

	g.Invoke(nil)
	time.Sleep(200 * time.Millisecond)

	// Output:
	// attempt 1
	// attempt 2
	// attempt 3
}
