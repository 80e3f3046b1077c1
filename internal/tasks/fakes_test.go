package tasks

import (
	"context"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/doctasks/internal/mkdocs"
)

// journal records every collaborator call in order.
type journal struct {
	calls []string
	fail  map[string]error
}

func (j *journal) record(call string) error {
	j.calls = append(j.calls, call)
	for prefix, err := range j.fail {
		if strings.HasPrefix(call, prefix) {
			return err
		}
	}
	return nil
}

type fakeInstaller struct {
	j        *journal
	packages [][]string
}

func (f *fakeInstaller) Bootstrap(context.Context) error { return f.j.record("bootstrap") }

func (f *fakeInstaller) Install(_ context.Context, packages []string) error {
	f.packages = append(f.packages, packages)
	return f.j.record("install " + strings.Join(packages, " "))
}

type fakeGenerator struct {
	j       *journal
	deploys []mkdocs.DeployOptions
	serve   func(ctx context.Context) error
}

func (f *fakeGenerator) Build(_ context.Context, clean bool) error {
	return f.j.record(fmt.Sprintf("build clean=%t", clean))
}

func (f *fakeGenerator) Serve(ctx context.Context) error {
	if err := f.j.record("serve"); err != nil {
		return err
	}
	if f.serve != nil {
		return f.serve(ctx)
	}
	return nil
}

func (f *fakeGenerator) Deploy(_ context.Context, opts mkdocs.DeployOptions) error {
	f.deploys = append(f.deploys, opts)
	return f.j.record("deploy " + strings.Join(opts.Args(), " "))
}

type fakeVCS struct {
	j    *journal
	urls []string
}

func (f *fakeVCS) AddRemote(_ context.Context, name, url string) error {
	f.urls = append(f.urls, url)
	return f.j.record("add-remote " + name)
}

func (f *fakeVCS) Fetch(_ context.Context, remote string) error {
	return f.j.record("fetch " + remote)
}

func (f *fakeVCS) FetchBranch(_ context.Context, remote, branch string) error {
	return f.j.record("fetch-branch " + remote + " " + branch)
}

type fakeBrowser struct {
	j *journal
}

func (f *fakeBrowser) Open(url string) error { return f.j.record("open " + url) }
