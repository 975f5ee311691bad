// Package timing measures repeated runs of a function.
package timing

import (
	"fmt"
	"slices"
	"time"
)

// Stats summarises the durations of the timed runs.
type Stats struct {
	Runs   int
	Min    time.Duration
	Median time.Duration
	Max    time.Duration
}

// String formats the stats as "median (min / max)".
func (s Stats) String() string {
	return fmt.Sprintf("median %v (min %v / max %v, %d runs)", s.Median, s.Min, s.Max, s.Runs)
}

// Measure runs fn once to warm up, then iterations more times, timing each.
// Panics if iterations < 1.
func Measure(iterations int, fn func()) Stats {
	if iterations < 1 {
		panic(fmt.Sprintf("timing: Measure requires iterations ≥ 1, got %d", iterations))
	}

	fn() // warm-up
	times := make([]time.Duration, iterations)
	for i := range times {
		start := time.Now()
		fn()
		times[i] = time.Since(start)
	}
	slices.Sort(times)

	return Stats{
		Runs:   iterations,
		Min:    times[0],
		Median: times[iterations/2],
		Max:    times[iterations-1],
	}
}
