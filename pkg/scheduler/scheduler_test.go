package scheduler_test

import (
	"fmt"
	"testing"

	"github.com/akawashiro/BriCA1/pkg/scheduler"
)

// callLog collects lifecycle calls across components so tests can assert
// phase ordering.
type callLog struct {
	calls []string
}

// fakeComponent records every lifecycle call it receives. onFire, when set,
// runs inside Fire so tests can simulate slow components.
type fakeComponent struct {
	name     string
	interval float64
	offset   float64
	log      *callLog

	lastInputTime float64
	inputTimes    []float64
	outputTimes   []float64
	fires         int

	inputErr  error
	fireErr   error
	outputErr error
	onFire    func()
}

func (c *fakeComponent) Input(t float64) error {
	if c.inputErr != nil {
		return c.inputErr
	}
	c.lastInputTime = t
	c.inputTimes = append(c.inputTimes, t)
	c.record("input", t)
	return nil
}

func (c *fakeComponent) Fire() error {
	if c.fireErr != nil {
		return c.fireErr
	}
	if c.onFire != nil {
		c.onFire()
	}
	c.fires++
	if c.log != nil {
		c.log.calls = append(c.log.calls, c.name+".fire")
	}
	return nil
}

func (c *fakeComponent) Output(t float64) error {
	if c.outputErr != nil {
		return c.outputErr
	}
	c.outputTimes = append(c.outputTimes, t)
	c.record("output", t)
	return nil
}

func (c *fakeComponent) record(phase string, t float64) {
	if c.log != nil {
		c.log.calls = append(c.log.calls, fmt.Sprintf("%s.%s@%g", c.name, phase, t))
	}
}

func (c *fakeComponent) Offset() float64        { return c.offset }
func (c *fakeComponent) Interval() float64      { return c.interval }
func (c *fakeComponent) LastInputTime() float64 { return c.lastInputTime }

// fixedSource is a Source over a fixed component slice.
type fixedSource []scheduler.Component

func (s fixedSource) AllComponents() []scheduler.Component { return s }

func TestUpdateCopiesSourceSlice(t *testing.T) {
	a := &fakeComponent{name: "a", interval: 1.0}
	b := &fakeComponent{name: "b", interval: 1.0}
	src := fixedSource{a, b}

	s := scheduler.NewVirtualTimeSync(1.0)
	if err := s.Update(src); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// Mutating the caller's slice must not affect the bound set.
	src[0] = &fakeComponent{name: "intruder", interval: 1.0, fireErr: fmt.Errorf("boom")}

	if _, err := s.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if a.fires != 1 || b.fires != 1 {
		t.Errorf("expected original components to fire once, got a=%d b=%d", a.fires, b.fires)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s := scheduler.NewVirtualTimeSync(2.0)
	if err := s.Update(fixedSource{&fakeComponent{name: "a", interval: 1.0}}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if _, err := s.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	s.Reset()
	s.Reset()

	if s.Time() != 0.0 {
		t.Errorf("Time after Reset = %v, want 0", s.Time())
	}
	if s.NumSteps() != 0 {
		t.Errorf("NumSteps after Reset = %d, want 0", s.NumSteps())
	}

	// A step on a reset scheduler drives nothing but still advances time.
	got, err := s.Step()
	if err != nil {
		t.Fatalf("Step after Reset failed: %v", err)
	}
	if got != 2.0 {
		t.Errorf("Step after Reset returned %v, want 2.0", got)
	}
}

func TestNumStepsCountsInvocations(t *testing.T) {
	s := scheduler.NewVirtualTimeSync(1.0)
	if err := s.Update(fixedSource{}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if _, err := s.Step(); err != nil {
			t.Fatalf("Step %d failed: %v", i+1, err)
		}
	}
	if s.NumSteps() != 4 {
		t.Errorf("NumSteps = %d, want 4", s.NumSteps())
	}
}
