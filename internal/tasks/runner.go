package tasks

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/doctasks/internal/config"
	derrors "git.home.luguber.info/inful/doctasks/internal/errors"
	"git.home.luguber.info/inful/doctasks/internal/logfields"
	"git.home.luguber.info/inful/doctasks/internal/metrics"
	"git.home.luguber.info/inful/doctasks/internal/observability"
)

// Task names.
const (
	TaskBuild   = "build"
	TaskServe   = "serve"
	TaskPublish = "publish"
)

// DefaultTask runs when no task is named.
const DefaultTask = TaskServe

// Names returns the task names in declaration order.
func Names() []string {
	return []string{TaskBuild, TaskServe, TaskPublish}
}

// Runner executes tasks against its collaborators.
type Runner struct {
	cfg *config.Config
	env config.Env

	installer Installer
	generator Generator
	vcs       VCS
	browser   Browser
	recorder  metrics.Recorder
	logger    *slog.Logger
}

// NewRunner wires a Runner. cfg and env are read-only for the runner's lifetime.
func NewRunner(cfg *config.Config, env config.Env, installer Installer, generator Generator, vcs VCS, browser Browser) *Runner {
	return &Runner{
		cfg:       cfg,
		env:       env,
		installer: installer,
		generator: generator,
		vcs:       vcs,
		browser:   browser,
		recorder:  metrics.NoopRecorder{},
		logger:    slog.Default(),
	}
}

// WithRecorder attaches a metrics recorder.
func (r *Runner) WithRecorder(rec metrics.Recorder) *Runner {
	if rec != nil {
		r.recorder = rec
	}
	return r
}

// WithLogger replaces the logger used for task and step messages.
func (r *Runner) WithLogger(logger *slog.Logger) *Runner {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Run dispatches to the task called name; an empty name runs DefaultTask.
func (r *Runner) Run(ctx context.Context, name string) error {
	if name == "" {
		name = DefaultTask
	}
	switch name {
	case TaskBuild:
		return r.Build(ctx)
	case TaskServe:
		return r.Serve(ctx)
	case TaskPublish:
		return r.Publish(ctx)
	default:
		return derrors.ValidationError("unknown task").
			WithContext("task", name).
			WithContext("available", Names()).
			Build()
	}
}

// execution tracks one task invocation.
type execution struct {
	r      *Runner
	task   string
	logger *slog.Logger
	start  time.Time
}

// begin starts an execution. The returned context carries its logger so
// collaborators log with the same run_id and task.
func (r *Runner) begin(ctx context.Context, task string) (context.Context, *execution) {
	logger := r.logger.With(logfields.RunID(uuid.NewString()), logfields.Task(task))
	logger.Info("Starting task")
	return observability.WithLogger(ctx, logger), &execution{r: r, task: task, logger: logger, start: time.Now()}
}

// step runs fn, logging and timing it under name.
func (e *execution) step(name string, fn func() error) error {
	start := time.Now()
	e.logger.Debug("Starting step", logfields.Step(name))
	err := fn()
	d := time.Since(start)
	e.r.recorder.ObserveStepDuration(e.task, name, d)
	if err != nil {
		e.logger.Debug("Step failed", logfields.Step(name), logfields.Error(err))
		return err
	}
	e.logger.Debug("Step completed", logfields.Step(name), logfields.DurationMS(float64(d.Milliseconds())))
	return nil
}

// end records the outcome. It returns err unchanged.
func (e *execution) end(err error) error {
	d := time.Since(e.start)
	e.r.recorder.ObserveTaskDuration(e.task, d)
	if err != nil {
		e.r.recorder.IncTaskOutcome(e.task, metrics.OutcomeFailed)
		e.logger.Debug("Task failed", logfields.DurationMS(float64(d.Milliseconds())))
		return err
	}
	e.r.recorder.IncTaskOutcome(e.task, metrics.OutcomeSuccess)
	e.logger.Info("Task completed", logfields.DurationMS(float64(d.Milliseconds())))
	return nil
}

// installDeps is shared by every task: upgrade tooling, then install the
// dependency list.
func (e *execution) installDeps(ctx context.Context) error {
	if err := e.step("bootstrap", func() error { return e.r.installer.Bootstrap(ctx) }); err != nil {
		return err
	}
	// Installers get a copy; cfg.Deps is never mutated.
	deps := slices.Clone(e.r.cfg.Deps)
	return e.step("install", func() error { return e.r.installer.Install(ctx, deps) })
}
