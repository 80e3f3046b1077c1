package tasks

import (
	"context"

	"git.home.luguber.info/inful/doctasks/internal/config"
	"git.home.luguber.info/inful/doctasks/internal/logfields"
	"git.home.luguber.info/inful/doctasks/internal/mkdocs"
)

// Build installs the documentation dependencies and renders the site with a
// clean output directory.
func (r *Runner) Build(ctx context.Context) error {
	ctx, e := r.begin(ctx, TaskBuild)
	if err := e.installDeps(ctx); err != nil {
		return e.end(err)
	}
	return e.end(e.step("build", func() error { return r.generator.Build(ctx, true) }))
}

// Serve installs the documentation dependencies, opens the browser at the
// local site and runs the development server until ctx is cancelled.
func (r *Runner) Serve(ctx context.Context) error {
	ctx, e := r.begin(ctx, TaskServe)
	if err := e.installDeps(ctx); err != nil {
		return e.end(err)
	}

	url := r.cfg.ServeURL()
	// A browser that cannot be launched does not stop the server.
	if err := e.step("open-browser", func() error { return r.browser.Open(url) }); err != nil {
		e.logger.Warn("Could not open browser; visit the URL manually", logfields.URL(url), logfields.Error(err))
	}

	return e.end(e.step("serve", func() error { return r.generator.Serve(ctx) }))
}

// Publish deploys the site to the pages branch. It requires GITHUB_TOKEN
// and fails before doing anything when it is missing. On CI an
// authenticated remote is added and the pages branch fetched before
// deploying through that remote; elsewhere mkdocs deploys with its defaults.
func (r *Runner) Publish(ctx context.Context) error {
	ctx, e := r.begin(ctx, TaskPublish)
	token, err := config.RequireToken(r.env)
	if err != nil {
		return e.end(err)
	}

	if err := e.installDeps(ctx); err != nil {
		return e.end(err)
	}

	if !r.env.OnCI {
		return e.end(e.step("deploy", func() error { return r.generator.Deploy(ctx, mkdocs.DeployOptions{}) }))
	}

	remote := r.cfg.RemoteName
	steps := []struct {
		name string
		fn   func() error
	}{
		{"add-remote", func() error { return r.vcs.AddRemote(ctx, remote, r.cfg.AuthenticatedURL(token)) }},
		{"fetch", func() error { return r.vcs.Fetch(ctx, remote) }},
		{"fetch-branch", func() error { return r.vcs.FetchBranch(ctx, remote, r.cfg.PagesBranch) }},
		{"deploy", func() error {
			return r.generator.Deploy(ctx, mkdocs.DeployOptions{Verbose: true, Clean: true, RemoteName: remote})
		}},
	}
	for _, s := range steps {
		if err := e.step(s.name, s.fn); err != nil {
			return e.end(err)
		}
	}
	return e.end(nil)
}
