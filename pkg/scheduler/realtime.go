package scheduler

import (
	"fmt"
	"time"
)

// RealTimeConfig tunes the time sources of a RealTimeSync scheduler. A nil
// config or a nil field selects the system default.
type RealTimeConfig struct {
	Clock Clock   // wall-clock source, default SystemClock
	Sleep Sleeper // pacing sleep, default time.Sleep
}

// RealTimeSync runs the synced input/fire/output cycle paced against the
// wall clock. The configured interval is the minimum time between the start
// of the input phase and the start of the output phase; the actual spacing
// is always at least the interval and can run arbitrarily longer, in which
// case the step is flagged as lagged. Pacing is soft real time only.
type RealTimeSync struct {
	base
	interval float64
	clock    Clock
	sleep    Sleeper

	lastInputTime  float64
	lastOutputTime float64
	lastSpent      float64
	lagged         bool
}

// NewRealTimeSync creates a real time scheduler with the given minimum
// interval in seconds. interval must be positive.
func NewRealTimeSync(interval float64, config *RealTimeConfig) (*RealTimeSync, error) {
	s := &RealTimeSync{
		clock:          SystemClock,
		sleep:          time.Sleep,
		lastInputTime:  -1.0,
		lastOutputTime: -1.0,
		lastSpent:      -1.0,
	}
	if config != nil {
		if config.Clock != nil {
			s.clock = config.Clock
		}
		if config.Sleep != nil {
			s.sleep = config.Sleep
		}
	}
	if err := s.SetInterval(interval); err != nil {
		return nil, err
	}
	return s, nil
}

// SetInterval replaces the minimum interval. interval must be positive;
// invalid values are rejected, never clamped.
func (s *RealTimeSync) SetInterval(interval float64) error {
	if interval <= 0 {
		return fmt.Errorf("scheduler: interval must be positive, got %v", interval)
	}
	s.interval = interval
	return nil
}

// Interval returns the configured minimum interval in seconds.
func (s *RealTimeSync) Interval() float64 { return s.interval }

// Reset restores counters and timing samples. The configured interval and
// time sources are kept.
func (s *RealTimeSync) Reset() {
	s.base.Reset()
	s.lastInputTime = -1.0
	s.lastOutputTime = -1.0
	s.lastSpent = -1.0
	s.lagged = false
}

// Step samples the wall clock, runs the input phase and the fire phase for
// all components in list order, then sleeps for whatever remains of the
// interval before running the output phase. When the fire phase alone
// exceeds the interval no sleep happens and the step is marked lagged;
// the flag covers that step only. The returned time is sampled after the
// output phase, so it accounts for the cost of the output calls themselves.
func (s *RealTimeSync) Step() (float64, error) {
	s.numSteps++

	s.lastInputTime = s.clock()
	s.currentTime = s.lastInputTime

	for _, c := range s.components {
		if err := c.Input(s.lastInputTime); err != nil {
			return s.currentTime, err
		}
	}
	for _, c := range s.components {
		if err := c.Fire(); err != nil {
			return s.currentTime, err
		}
	}

	s.lastSpent = s.clock() - s.lastInputTime
	remaining := s.interval - s.lastSpent

	s.lagged = false
	if remaining > 0 {
		s.sleep(time.Duration(remaining * float64(time.Second)))
	} else if remaining < 0 {
		s.lagged = true
	}

	s.lastOutputTime = s.clock()
	s.currentTime = s.lastOutputTime

	for _, c := range s.components {
		if err := c.Output(s.lastOutputTime); err != nil {
			return s.currentTime, err
		}
	}

	s.lastOutputTime = s.clock()
	s.currentTime = s.lastOutputTime

	return s.currentTime, nil
}

// LastInputTime returns the wall-clock time at which the most recent step
// started its input phase, or -1 before the first step.
func (s *RealTimeSync) LastInputTime() float64 { return s.lastInputTime }

// LastOutputTime returns the wall-clock time sampled after the most recent
// step's output phase, or -1 before the first step.
func (s *RealTimeSync) LastOutputTime() float64 { return s.lastOutputTime }

// LastSpent returns the seconds the most recent step spent between the
// start of its input phase and the end of its fire phase, or -1 before the
// first step.
func (s *RealTimeSync) LastSpent() float64 { return s.lastSpent }

// Lagged reports whether firing all components in the most recent step took
// longer than the configured interval.
func (s *RealTimeSync) Lagged() bool { return s.lagged }
