package scheduler

import "github.com/google/uuid"

// TimingReporter is implemented by schedulers that sample the wall-clock
// cost of their steps.
type TimingReporter interface {
	LastSpent() float64
	Lagged() bool
}

// Recorder wraps a Scheduler and captures one StepRecord per successful
// step. It implements Scheduler and can stand in wherever the wrapped
// scheduler is used. Records accumulate in memory until Flush.
type Recorder struct {
	Scheduler
	runID     string
	traceFile string
	trace     []StepRecord
}

// NewRecorder wraps s. Flush writes the trace to traceFile; an empty
// traceFile makes Flush a no-op.
func NewRecorder(s Scheduler, traceFile string) *Recorder {
	return &Recorder{
		Scheduler: s,
		runID:     uuid.NewString(),
		traceFile: traceFile,
	}
}

// RunID identifies this recording.
func (r *Recorder) RunID() string { return r.runID }

// Step delegates to the wrapped scheduler and appends a record for the
// step. Failed steps are not recorded; the error propagates as-is.
func (r *Recorder) Step() (float64, error) {
	t, err := r.Scheduler.Step()
	if err != nil {
		return t, err
	}
	rec := StepRecord{Step: r.Scheduler.NumSteps(), Time: t}
	if tr, ok := r.Scheduler.(TimingReporter); ok {
		rec.Spent = tr.LastSpent()
		rec.Lagged = tr.Lagged()
	}
	r.trace = append(r.trace, rec)
	return t, nil
}

// Reset resets the wrapped scheduler and discards the recorded trace.
func (r *Recorder) Reset() {
	r.Scheduler.Reset()
	r.trace = nil
}

// Trace returns the records captured so far.
func (r *Recorder) Trace() []StepRecord { return r.trace }

// Flush saves the recorded trace to the trace file.
func (r *Recorder) Flush() error {
	if r.traceFile == "" {
		return nil
	}
	return SaveTrace(r.traceFile, r.trace)
}
