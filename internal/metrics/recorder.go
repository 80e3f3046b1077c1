package metrics

import "time"

// Outcome enumerates task result categories for counters.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Recorder defines observability hooks for tasks and their steps.
type Recorder interface {
	ObserveStepDuration(task, step string, d time.Duration)
	ObserveTaskDuration(task string, d time.Duration)
	IncTaskOutcome(task string, outcome Outcome)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStepDuration(string, string, time.Duration) {}
func (NoopRecorder) ObserveTaskDuration(string, time.Duration)         {}
func (NoopRecorder) IncTaskOutcome(string, Outcome)                    {}
