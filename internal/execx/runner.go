package execx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"git.home.luguber.info/inful/doctasks/internal/logfields"
	"git.home.luguber.info/inful/doctasks/internal/observability"
)

// ErrToolNotFound indicates the executable is not on PATH.
var ErrToolNotFound = errors.New("executable not found")

// interruptGrace bounds how long a cancelled child gets to exit after SIGINT.
const interruptGrace = 5 * time.Second

// Command is a single external tool invocation.
type Command struct {
	Name string
	Args []string
}

// String renders the command line for logs and error messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes commands.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ToolError reports a command that could not be started or exited non-zero.
type ToolError struct {
	Command Command
	Err     error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// ExitCode returns the child's exit status, or -1 when it never ran or was killed.
func (e *ToolError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// ExecRunner runs commands with os/exec, wiring the child to the given streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner attached to the process's standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes cmd in the foreground and blocks until it exits. Cancelling
// ctx sends the child an interrupt and kills it after a grace period.
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return &ToolError{Command: c, Err: fmt.Errorf("%w: %w", ErrToolNotFound, err)}
	}

	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }
	cmd.WaitDelay = interruptGrace

	logger := observability.Logger(ctx)
	logger.Debug("Running command", logfields.Tool(c.Name), logfields.Args(c.Args))
	start := time.Now()
	err = cmd.Run()
	logger.Debug("Command finished",
		logfields.Tool(c.Name),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())),
		logfields.Error(err))
	if err != nil {
		return &ToolError{Command: c, Err: err}
	}
	return nil
}

// DryRunRunner logs each command instead of executing it.
type DryRunRunner struct{}

func (DryRunRunner) Run(ctx context.Context, c Command) error {
	observability.Logger(ctx).Info("Dry run, skipping command", slog.String("command", c.String()))
	return nil
}
