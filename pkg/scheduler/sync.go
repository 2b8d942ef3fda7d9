package scheduler

// VirtualTimeSync advances a shared virtual clock by a fixed interval each
// step, driving every component in lockstep.
type VirtualTimeSync struct {
	base
	interval float64
}

// NewVirtualTimeSync creates a synced virtual time scheduler. interval is
// the amount of virtual seconds the clock advances per step.
func NewVirtualTimeSync(interval float64) *VirtualTimeSync {
	return &VirtualTimeSync{interval: interval}
}

// Interval returns the virtual seconds added per step.
func (s *VirtualTimeSync) Interval() float64 { return s.interval }

// Step calls Input on every component at the current time, then Fire on
// every component, advances the clock by the interval, and calls Output on
// every component at the new time. The phases are strictly ordered: no
// component fires before all inputs are in, and no component observes a
// post-advance output within the same step. Components run in list order.
func (s *VirtualTimeSync) Step() (float64, error) {
	s.numSteps++

	for _, c := range s.components {
		if err := c.Input(s.currentTime); err != nil {
			return s.currentTime, err
		}
	}
	for _, c := range s.components {
		if err := c.Fire(); err != nil {
			return s.currentTime, err
		}
	}

	s.currentTime += s.interval

	for _, c := range s.components {
		if err := c.Output(s.currentTime); err != nil {
			return s.currentTime, err
		}
	}
	return s.currentTime, nil
}
