package scheduler

import "time"

// Clock returns the current time in seconds. The real time scheduler reads
// all of its wall-clock samples through a Clock so tests can substitute a
// deterministic fake.
type Clock func() float64

// Sleeper pauses the calling goroutine for at least d. Best effort: the
// actual delay may exceed the requested value depending on the platform's
// timer resolution.
type Sleeper func(d time.Duration)

var processStart = time.Now()

// SystemClock returns monotonic seconds since process start.
func SystemClock() float64 {
	return time.Since(processStart).Seconds()
}
