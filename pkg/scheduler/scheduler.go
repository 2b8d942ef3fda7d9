// Package scheduler drives a fixed set of components through an
// input/fire/output lifecycle under three notions of time: synchronized
// virtual time (VirtualTimeSync), per-component asynchronous virtual time
// (VirtualTime), and wall-clock real time with drift detection
// (RealTimeSync).
package scheduler

import "errors"

// ErrNotInitialized is returned by Step when the scheduler has no pending
// work because Update has not been called.
var ErrNotInitialized = errors.New("scheduler: Step called before Update")

// Component is a stateful processing unit driven by a Scheduler. The
// scheduler calls the lifecycle hooks in the order defined by its time
// policy and passes no other arguments. A non-nil error from any hook
// aborts the step and propagates to the caller of Step unmodified; the
// scheduler performs no retry and no suppression.
type Component interface {
	// Input feeds the component its inputs at time t.
	Input(t float64) error
	// Fire runs the component's computation on the inputs supplied so far.
	Fire() error
	// Output publishes the component's results at time t.
	Output(t float64) error

	// Offset is the component's initial scheduling offset in seconds.
	Offset() float64
	// Interval is the component's firing interval in seconds.
	Interval() float64
	// LastInputTime is the time most recently passed to Input.
	LastInputTime() float64
}

// Source enumerates the complete, flattened set of components to schedule.
// Typically implemented by an agent or other container object.
type Source interface {
	AllComponents() []Component
}

// Scheduler advances a schedule one step at a time. Update must be called
// before the first Step. Implementations are not safe for concurrent use;
// a single goroutine drives the whole lifecycle.
type Scheduler interface {
	// Reset restores the scheduler to its construction-time state,
	// clearing the bound component set. Idempotent.
	Reset()
	// Update rebinds the scheduler to the components enumerated by source,
	// discarding any previously bound set and pending schedule state.
	Update(source Source) error
	// Step advances the schedule by one logical unit and returns the new
	// current time.
	Step() (float64, error)
	// Time returns the current time without advancing the schedule.
	Time() float64
	// NumSteps returns the number of Step invocations since the last Reset.
	NumSteps() int
}

// base holds the state shared by all scheduler variants.
type base struct {
	numSteps    int
	currentTime float64
	components  []Component
}

func (b *base) Reset() {
	b.numSteps = 0
	b.currentTime = 0.0
	b.components = nil
}

// Update replaces the bound component set. The source's slice is copied so
// later mutation by the caller does not affect the scheduler.
func (b *base) Update(source Source) error {
	b.components = append([]Component(nil), source.AllComponents()...)
	return nil
}

func (b *base) Time() float64 { return b.currentTime }

func (b *base) NumSteps() int { return b.numSteps }
