package tasks

import (
	"context"

	"git.home.luguber.info/inful/doctasks/internal/mkdocs"
)

// Installer installs Python packages.
type Installer interface {
	// Bootstrap upgrades the installer and its supporting tooling.
	Bootstrap(ctx context.Context) error
	Install(ctx context.Context, packages []string) error
}

// Generator is the static site generator.
type Generator interface {
	Build(ctx context.Context, clean bool) error
	// Serve blocks until ctx is cancelled or the server exits.
	Serve(ctx context.Context) error
	Deploy(ctx context.Context, opts mkdocs.DeployOptions) error
}

// VCS prepares the repository for publishing from CI.
type VCS interface {
	AddRemote(ctx context.Context, name, url string) error
	Fetch(ctx context.Context, remote string) error
	FetchBranch(ctx context.Context, remote, branch string) error
}

// Browser opens a URL for the user.
type Browser interface {
	Open(url string) error
}
