package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg          *prom.Registry
	stepDuration *prom.HistogramVec
	taskDuration *prom.HistogramVec
	taskOutcome  *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the metrics on reg (a fresh
// registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		stepDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "doctasks",
			Name:      "step_duration_seconds",
			Help:      "Duration of individual task steps",
			Buckets:   prom.ExponentialBuckets(0.1, 2, 12),
		}, []string{"task", "step"}),
		taskDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "doctasks",
			Name:      "task_duration_seconds",
			Help:      "Total task duration",
			Buckets:   prom.ExponentialBuckets(0.1, 2, 12),
		}, []string{"task"}),
		taskOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doctasks",
			Name:      "task_outcomes_total",
			Help:      "Task outcomes by final status",
		}, []string{"task", "outcome"}),
	}
	reg.MustRegister(pr.stepDuration, pr.taskDuration, pr.taskOutcome)
	return pr
}

func (p *PrometheusRecorder) ObserveStepDuration(task, step string, d time.Duration) {
	if p == nil {
		return
	}
	p.stepDuration.WithLabelValues(task, step).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveTaskDuration(task string, d time.Duration) {
	if p == nil {
		return
	}
	p.taskDuration.WithLabelValues(task).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncTaskOutcome(task string, outcome Outcome) {
	if p == nil {
		return
	}
	p.taskOutcome.WithLabelValues(task, string(outcome)).Inc()
}

// WriteTextfile writes the registry to path in text exposition format. The
// file is replaced atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}
