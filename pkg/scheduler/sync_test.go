package scheduler_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/akawashiro/BriCA1/pkg/scheduler"
)

func TestVirtualTimeSyncPhaseOrder(t *testing.T) {
	log := &callLog{}
	a := &fakeComponent{name: "a", interval: 1.0, log: log}
	b := &fakeComponent{name: "b", interval: 1.0, log: log}

	s := scheduler.NewVirtualTimeSync(1.0)
	if err := s.Update(fixedSource{a, b}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := s.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if got != 1.0 {
		t.Errorf("Step returned %v, want 1.0", got)
	}

	// All inputs precede all fires, which precede the clock advance, which
	// precedes all outputs. Components run in list order within each phase.
	want := []string{
		"a.input@0", "b.input@0",
		"a.fire", "b.fire",
		"a.output@1", "b.output@1",
	}
	if !reflect.DeepEqual(log.calls, want) {
		t.Errorf("call order = %v, want %v", log.calls, want)
	}
}

func TestVirtualTimeSyncAccumulatesInterval(t *testing.T) {
	s := scheduler.NewVirtualTimeSync(0.5)
	if err := s.Update(fixedSource{&fakeComponent{name: "a", interval: 0.5}}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	for i := 1; i <= 8; i++ {
		got, err := s.Step()
		if err != nil {
			t.Fatalf("Step %d failed: %v", i, err)
		}
		if want := 0.5 * float64(i); got != want {
			t.Errorf("Step %d returned %v, want %v", i, got, want)
		}
	}
	if s.Time() != 4.0 {
		t.Errorf("Time after 8 steps = %v, want 4.0", s.Time())
	}
}

func TestVirtualTimeSyncSameTimeForAllComponents(t *testing.T) {
	a := &fakeComponent{name: "a", interval: 1.0}
	b := &fakeComponent{name: "b", interval: 1.0}

	s := scheduler.NewVirtualTimeSync(0.25)
	if err := s.Update(fixedSource{a, b}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := s.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	if !reflect.DeepEqual(a.inputTimes, b.inputTimes) {
		t.Errorf("input times diverged: a=%v b=%v", a.inputTimes, b.inputTimes)
	}
	if !reflect.DeepEqual(a.outputTimes, b.outputTimes) {
		t.Errorf("output times diverged: a=%v b=%v", a.outputTimes, b.outputTimes)
	}
}

func TestVirtualTimeSyncComponentErrorPropagates(t *testing.T) {
	boom := errors.New("fire failed")
	a := &fakeComponent{name: "a", interval: 1.0}
	bad := &fakeComponent{name: "bad", interval: 1.0, fireErr: boom}

	s := scheduler.NewVirtualTimeSync(1.0)
	if err := s.Update(fixedSource{a, bad}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	_, err := s.Step()
	if err != boom {
		t.Fatalf("Step error = %v, want the component's own error", err)
	}
	// The step aborted before the clock advance and the output phase.
	if s.Time() != 0.0 {
		t.Errorf("Time after failed step = %v, want 0", s.Time())
	}
	if len(a.outputTimes) != 0 {
		t.Errorf("output ran despite failed fire phase: %v", a.outputTimes)
	}
}
