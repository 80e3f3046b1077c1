package execx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doctasks/internal/observability"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCommandString(t *testing.T) {
	require.Equal(t, "mkdocs", Command{Name: "mkdocs"}.String())
	require.Equal(t, "mkdocs build --clean", Command{Name: "mkdocs", Args: []string{"build", "--clean"}}.String())
}

func TestExecRunner_StreamsOutput(t *testing.T) {
	requireShell(t)
	var out bytes.Buffer
	r := &ExecRunner{Stdout: &out, Stderr: io.Discard}

	err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo hello"}})
	require.NoError(t, err)
	require.Equal(t, "hello\n", out.String())
}

func TestExecRunner_PropagatesExitCode(t *testing.T) {
	requireShell(t)
	r := &ExecRunner{Stdout: io.Discard, Stderr: io.Discard}

	err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "exit 3"}})
	require.Error(t, err)

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	require.Equal(t, 3, toolErr.ExitCode())
	require.Contains(t, err.Error(), "sh -c exit 3")
}

func TestExecRunner_MissingExecutable(t *testing.T) {
	r := &ExecRunner{Stdout: io.Discard, Stderr: io.Discard}

	err := r.Run(context.Background(), Command{Name: "doctasks-no-such-tool"})
	require.ErrorIs(t, err, ErrToolNotFound)

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	require.Equal(t, -1, toolErr.ExitCode())
}

func TestExecRunner_CancelInterruptsChild(t *testing.T) {
	requireShell(t)
	r := &ExecRunner{Stdout: io.Discard, Stderr: io.Discard}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := r.Run(ctx, Command{Name: "sh", Args: []string{"-c", "sleep 30"}})
	require.Error(t, err)
	require.Less(t, time.Since(start), 20*time.Second)
	require.True(t, errors.Is(ctx.Err(), context.DeadlineExceeded))
}

func TestDryRunRunner(t *testing.T) {
	var logs bytes.Buffer
	ctx := observability.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)).With("run_id", "r1"))

	require.NoError(t, DryRunRunner{}.Run(ctx, Command{Name: "mkdocs", Args: []string{"gh-deploy"}}))
	require.Contains(t, logs.String(), "mkdocs gh-deploy")
	require.Contains(t, logs.String(), "run_id=r1")
}
