package commands

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doctasks/internal/config"
	derrors "git.home.luguber.info/inful/doctasks/internal/errors"
)

// parse builds a kong context for args without exiting the test binary.
func parse(t *testing.T, args ...string) (*kong.Context, *CLI) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("doctasks"),
		Vars("test"),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit %d", code) }),
	)
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	return kctx, &cli
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	kctx, cli := parse(t, args...)
	return kctx.Run(&Global{Context: context.Background()}, cli)
}

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "doctasks.yaml")
}

func clearPublishEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvCI, "")
	t.Setenv(config.EnvToken, "")
}

// captureLogs routes the default logger, installed by AfterApply, into a buffer.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestDefaultCommandIsServe(t *testing.T) {
	kctx, cli := parse(t)
	require.Equal(t, "serve", kctx.Command())
	require.Equal(t, config.DefaultPath, filepath.Base(cli.Config))
}

func TestBuildDryRun(t *testing.T) {
	require.NoError(t, run(t, "-c", tempConfig(t), "--dry-run", "build"))
}

func TestServeDryRun(t *testing.T) {
	kctx, cli := parse(t, "-c", tempConfig(t), "--dry-run", "serve")
	logs := captureLogs(t)

	require.NoError(t, kctx.Run(&Global{Context: context.Background()}, cli))
	require.Contains(t, logs.String(), `command="mkdocs serve"`)
	require.Contains(t, logs.String(), "run_id=")
	require.Contains(t, logs.String(), "task=serve")
}

func TestServeUsesConfiguredAddress(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("serve_address: localhost:9000\n"), 0o600))
	kctx, cli := parse(t, "-c", path, "--dry-run", "--no-browser", "serve")
	logs := captureLogs(t)

	require.NoError(t, kctx.Run(&Global{Context: context.Background()}, cli))
	require.Contains(t, logs.String(), `command="mkdocs serve --dev-addr localhost:9000"`)
}

func TestPublishRequiresToken(t *testing.T) {
	clearPublishEnv(t)

	err := run(t, "-c", tempConfig(t), "publish")
	require.Error(t, err)
	require.True(t, derrors.HasCategory(err, derrors.CategoryAuth))
	require.Equal(t, 5, derrors.NewCLIErrorAdapter(false, slog.Default()).ExitCodeFor(err))
}

func TestPublishDryRunOnCIWritesMetrics(t *testing.T) {
	clearPublishEnv(t)
	t.Setenv(config.EnvCI, "true")
	t.Setenv(config.EnvToken, "s3cret")
	metricsFile := filepath.Join(t.TempDir(), "doctasks.prom")

	require.NoError(t, run(t, "-c", tempConfig(t), "--dry-run", "--metrics-file", metricsFile, "publish"))

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	require.Contains(t, string(data), `doctasks_task_outcomes_total{outcome="success",task="publish"} 1`)
	require.Contains(t, string(data), `step="fetch-branch"`)
}

func TestInvalidConfigFails(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("deps: []\n"), 0o600))

	err := run(t, "-c", path, "--dry-run", "build")
	require.True(t, derrors.HasCategory(err, derrors.CategoryConfig))
}

func TestInit(t *testing.T) {
	path := tempConfig(t)

	require.NoError(t, run(t, "-c", path, "init"))
	require.FileExists(t, path)

	err := run(t, "-c", path, "init")
	require.True(t, derrors.HasCategory(err, derrors.CategoryConfig))
	require.NoError(t, run(t, "-c", path, "init", "--force"))
}

func TestParseLogLevel(t *testing.T) {
	t.Setenv("DOCTASKS_LOG_LEVEL", "")
	require.Equal(t, slog.LevelInfo, parseLogLevel(false))
	require.Equal(t, slog.LevelDebug, parseLogLevel(true))

	t.Setenv("DOCTASKS_LOG_LEVEL", "WARN")
	require.Equal(t, slog.LevelWarn, parseLogLevel(false))
	require.Equal(t, slog.LevelDebug, parseLogLevel(true))
}
