// Package installer installs the Python packages the documentation build needs.
package installer

import (
	"context"

	derrors "git.home.luguber.info/inful/doctasks/internal/errors"
	"git.home.luguber.info/inful/doctasks/internal/execx"
	"git.home.luguber.info/inful/doctasks/internal/logfields"
	"git.home.luguber.info/inful/doctasks/internal/observability"
)

// Pip runs "<python> -m pip install" through an execx.Runner.
type Pip struct {
	python  string
	tooling []string
	runner  execx.Runner
}

// NewPip creates an installer using python as interpreter. tooling lists the
// packages upgraded by Bootstrap.
func NewPip(runner execx.Runner, python string, tooling []string) *Pip {
	return &Pip{python: python, tooling: tooling, runner: runner}
}

// Bootstrap upgrades the installer and its supporting tooling.
func (p *Pip) Bootstrap(ctx context.Context) error {
	if len(p.tooling) == 0 {
		return nil
	}
	args := append([]string{"--upgrade"}, p.tooling...)
	return p.install(ctx, "failed to upgrade installer tooling", args)
}

// Install installs packages in the given order.
func (p *Pip) Install(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return derrors.ValidationError("no packages to install").Build()
	}
	return p.install(ctx, "failed to install documentation dependencies", packages)
}

func (p *Pip) install(ctx context.Context, failure string, args []string) error {
	cmd := execx.Command{
		Name: p.python,
		Args: append([]string{"-m", "pip", "install"}, args...),
	}
	observability.Logger(ctx).Info("Installing packages", logfields.Tool("pip"), logfields.Args(args))
	if err := p.runner.Run(ctx, cmd); err != nil {
		return derrors.ToolError(err, failure).WithContext("command", cmd.String()).Build()
	}
	return nil
}
