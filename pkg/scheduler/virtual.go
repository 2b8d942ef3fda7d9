package scheduler

import "container/heap"

// event is a single scheduled fire point for a component.
type event struct {
	time      float64
	seq       uint64 // insertion order, breaks equal-time ties
	component Component
}

// eventQueue is a min-heap of events ordered by time, then insertion order.
type eventQueue []event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].time != q[j].time {
		return q[i].time < q[j].time
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(event)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// VirtualTime drives components at heterogeneous, self-reported cadences
// (Interval, Offset) using a priority queue keyed by next fire time. Once
// Update has run, the queue holds exactly one pending event per bound
// component; Step consumes one event and immediately schedules its
// successor, so the queue size stays constant across steps.
type VirtualTime struct {
	base
	queue eventQueue
	seq   uint64
}

// NewVirtualTime creates an event-queue virtual time scheduler.
func NewVirtualTime() *VirtualTime {
	return &VirtualTime{}
}

func (s *VirtualTime) enqueue(t float64, c Component) {
	heap.Push(&s.queue, event{time: t, seq: s.seq, component: c})
	s.seq++
}

// Reset restores the initial state, discarding all pending events.
func (s *VirtualTime) Reset() {
	s.base.Reset()
	s.queue = nil
	s.seq = 0
}

// Update rebinds the component set, discarding any pending events. Each
// newly bound component is primed with one Input/Fire pass at the current
// time and scheduled at Offset + LastInputTime + Interval. The offset is
// applied only here; subsequent events are spaced by the interval alone.
func (s *VirtualTime) Update(source Source) error {
	if err := s.base.Update(source); err != nil {
		return err
	}
	s.queue = nil
	s.seq = 0
	for _, c := range s.components {
		if err := c.Input(s.currentTime); err != nil {
			return err
		}
		if err := c.Fire(); err != nil {
			return err
		}
		s.enqueue(c.Offset()+c.LastInputTime()+c.Interval(), c)
	}
	return nil
}

// Step pops the earliest event, advances the clock to its time, and runs
// Output, then Input, then Fire on that event's component. Output precedes
// Input so the previous cycle's output is flushed at the same instant the
// next input is supplied, treating the event time as a synchronization
// point. The component is then rescheduled one interval later. Equal-time
// events are served in insertion order.
func (s *VirtualTime) Step() (float64, error) {
	if len(s.queue) == 0 {
		return s.currentTime, ErrNotInitialized
	}
	s.numSteps++

	e := heap.Pop(&s.queue).(event)
	s.currentTime = e.time
	c := e.component

	if err := c.Output(s.currentTime); err != nil {
		return s.currentTime, err
	}
	if err := c.Input(s.currentTime); err != nil {
		return s.currentTime, err
	}
	if err := c.Fire(); err != nil {
		return s.currentTime, err
	}

	s.enqueue(s.currentTime+c.Interval(), c)
	return s.currentTime, nil
}

// Pending returns the number of queued events.
func (s *VirtualTime) Pending() int { return len(s.queue) }

// NextEventTime returns the time of the earliest pending event, or -1 if
// the queue is empty.
func (s *VirtualTime) NextEventTime() float64 {
	if len(s.queue) == 0 {
		return -1
	}
	return s.queue[0].time
}
