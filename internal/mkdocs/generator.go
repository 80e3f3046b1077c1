package mkdocs

import (
	"context"

	derrors "git.home.luguber.info/inful/doctasks/internal/errors"
	"git.home.luguber.info/inful/doctasks/internal/execx"
	"git.home.luguber.info/inful/doctasks/internal/logfields"
	"git.home.luguber.info/inful/doctasks/internal/observability"
)

// DeployOptions tunes "mkdocs gh-deploy". The zero value deploys with mkdocs defaults.
type DeployOptions struct {
	Verbose    bool
	Clean      bool
	RemoteName string
}

// Args renders the gh-deploy command line.
func (o DeployOptions) Args() []string {
	args := []string{"gh-deploy"}
	if o.Verbose {
		args = append(args, "-v")
	}
	if o.Clean {
		args = append(args, "--clean")
	}
	if o.RemoteName != "" {
		args = append(args, "--remote-name", o.RemoteName)
	}
	return args
}

// Generator invokes the mkdocs binary.
type Generator struct {
	binary  string
	devAddr string
	runner  execx.Runner
}

// NewGenerator returns a Generator running binary (usually "mkdocs").
func NewGenerator(runner execx.Runner, binary string) *Generator {
	return &Generator{binary: binary, runner: runner}
}

// WithDevAddr makes Serve listen on addr (host:port) instead of the
// dev_addr from mkdocs.yml.
func (g *Generator) WithDevAddr(addr string) *Generator {
	g.devAddr = addr
	return g
}

// Build renders the site; clean removes stale files from the output directory first.
func (g *Generator) Build(ctx context.Context, clean bool) error {
	args := []string{"build"}
	if clean {
		args = append(args, "--clean")
	}
	return g.run(ctx, "mkdocs build failed", args)
}

// Serve runs the live-reloading development server in the foreground. It
// returns nil once ctx is cancelled, which is how an interrupted preview ends.
func (g *Generator) Serve(ctx context.Context) error {
	args := []string{"serve"}
	if g.devAddr != "" {
		args = append(args, "--dev-addr", g.devAddr)
	}
	err := g.run(ctx, "mkdocs serve failed", args)
	if err != nil && ctx.Err() != nil {
		observability.Logger(ctx).Info("Documentation server stopped")
		return nil
	}
	return err
}

// Deploy publishes the built site to the pages branch.
func (g *Generator) Deploy(ctx context.Context, opts DeployOptions) error {
	return g.run(ctx, "mkdocs gh-deploy failed", opts.Args())
}

func (g *Generator) run(ctx context.Context, failure string, args []string) error {
	cmd := execx.Command{Name: g.binary, Args: args}
	observability.Logger(ctx).Info("Running mkdocs", logfields.Tool(g.binary), logfields.Args(args))
	if err := g.runner.Run(ctx, cmd); err != nil {
		return derrors.ToolError(err, failure).WithContext("command", cmd.String()).Build()
	}
	return nil
}
