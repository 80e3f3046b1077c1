package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/doctasks/internal/browser"
	"git.home.luguber.info/inful/doctasks/internal/config"
	"git.home.luguber.info/inful/doctasks/internal/execx"
	"git.home.luguber.info/inful/doctasks/internal/git"
	"git.home.luguber.info/inful/doctasks/internal/installer"
	"git.home.luguber.info/inful/doctasks/internal/logfields"
	"git.home.luguber.info/inful/doctasks/internal/metrics"
	"git.home.luguber.info/inful/doctasks/internal/mkdocs"
	"git.home.luguber.info/inful/doctasks/internal/tasks"
)

// Global is passed to every subcommand's Run.
type Global struct {
	// Context is cancelled on SIGINT/SIGTERM.
	Context context.Context
}

// CLI definition & global flags.
type CLI struct {
	Config      string           `short:"c" help:"Configuration file path" default:"${config_path}" type:"path"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	DryRun      bool             `name:"dry-run" help:"Log external commands and git operations instead of running them"`
	NoBrowser   bool             `name:"no-browser" help:"Do not open a browser when serving"`
	MetricsFile string           `name:"metrics-file" help:"Write task metrics in Prometheus text format to this file" type:"path"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" help:"Build the documentation site"`
	Serve   ServeCmd   `cmd:"" default:"1" help:"Build and serve the documentation locally with live reload (default)"`
	Publish PublishCmd `cmd:"" help:"Deploy the documentation to the pages branch (requires $GITHUB_TOKEN)"`
	Init    InitCmd    `cmd:"" help:"Write a configuration file with the default settings"`
}

// Vars are the interpolation variables the CLI struct tags refer to.
func Vars(version string) kong.Vars {
	return kong.Vars{
		"version":     version,
		"config_path": config.DefaultPath,
	}
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel honours -v first, then DOCTASKS_LOG_LEVEL.
func parseLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(os.Getenv("DOCTASKS_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newRunner loads .env, the configuration file and the environment, then
// wires the task runner.
func (c *CLI) newRunner() (*tasks.Runner, *metrics.PrometheusRecorder, error) {
	if _, err := config.LoadDotEnv(""); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, nil, err
	}
	env := config.LoadEnv()

	var (
		cmdRunner execx.Runner  = execx.NewExecRunner()
		opener    tasks.Browser = browser.NewSystem()
		vcs       tasks.VCS     = git.NewRepo(".").WithAuth(git.TokenAuth(env.Token))
	)
	if c.DryRun {
		cmdRunner = execx.DryRunRunner{}
		opener = browser.Noop{}
		vcs = git.DryRun{}
	}
	if c.NoBrowser {
		opener = browser.Noop{}
	}

	runner := tasks.NewRunner(cfg, env,
		installer.NewPip(cmdRunner, cfg.Python, cfg.Tooling),
		mkdocs.NewGenerator(cmdRunner, cfg.MkDocs).WithDevAddr(cfg.DevAddr()),
		vcs,
		opener,
	)

	var rec *metrics.PrometheusRecorder
	if c.MetricsFile != "" {
		rec = metrics.NewPrometheusRecorder(nil)
		runner.WithRecorder(rec)
	}
	return runner, rec, nil
}

// runTask runs the named task and writes metrics when requested.
func (c *CLI) runTask(g *Global, name string) error {
	runner, rec, err := c.newRunner()
	if err != nil {
		return err
	}

	runErr := runner.Run(g.Context, name)

	if rec != nil {
		if err := rec.WriteTextfile(c.MetricsFile); err != nil {
			slog.Warn("Failed to write metrics file", logfields.Path(c.MetricsFile), logfields.Error(err))
		}
	}
	return runErr
}
