package git

import (
	"context"

	"git.home.luguber.info/inful/doctasks/internal/logfields"
	"git.home.luguber.info/inful/doctasks/internal/observability"
)

// DryRun logs the repository operations it would perform.
type DryRun struct{}

func (DryRun) AddRemote(ctx context.Context, name, url string) error {
	observability.Logger(ctx).Info("Dry run, skipping git remote add", logfields.Remote(name), logfields.URL(Redact(url)))
	return nil
}

func (DryRun) Fetch(ctx context.Context, remote string) error {
	observability.Logger(ctx).Info("Dry run, skipping git fetch", logfields.Remote(remote))
	return nil
}

func (DryRun) FetchBranch(ctx context.Context, remote, branch string) error {
	observability.Logger(ctx).Info("Dry run, skipping git fetch", logfields.Remote(remote), logfields.Branch(branch))
	return nil
}
