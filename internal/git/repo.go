package git

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"

	derrors "git.home.luguber.info/inful/doctasks/internal/errors"
	"git.home.luguber.info/inful/doctasks/internal/logfields"
	"git.home.luguber.info/inful/doctasks/internal/observability"
)

// Repo is a lazily opened repository. Nothing touches disk until the first
// operation, so tasks that never publish work outside a git checkout.
type Repo struct {
	path    string
	auth    transport.AuthMethod
	secrets []string

	once sync.Once
	repo *git.Repository
	err  error
}

// NewRepo returns a Repo for the repository containing path. Parent
// directories are searched for .git like the git CLI does.
func NewRepo(path string) *Repo {
	return &Repo{path: path}
}

// WithAuth sets the credentials used for fetches. Basic auth passwords are
// masked in returned errors.
func (r *Repo) WithAuth(auth transport.AuthMethod) *Repo {
	r.auth = auth
	if basic, ok := auth.(*http.BasicAuth); ok {
		r.secrets = append(r.secrets, basic.Password)
	}
	return r
}

// TokenAuth returns HTTP basic credentials for a GitHub token.
func TokenAuth(token string) transport.AuthMethod {
	if token == "" {
		return nil
	}
	return &http.BasicAuth{Username: "x-access-token", Password: token}
}

func (r *Repo) open() (*git.Repository, error) {
	r.once.Do(func() {
		r.repo, r.err = git.PlainOpenWithOptions(r.path, &git.PlainOpenOptions{DetectDotGit: true})
		if r.err != nil {
			r.err = derrors.GitError(r.err, "failed to open repository").
				WithContext("path", r.path).
				Build()
		}
	})
	return r.repo, r.err
}

// AddRemote creates remote name pointing at url. An existing remote with the
// same name is an error.
func (r *Repo) AddRemote(ctx context.Context, name, url string) error {
	repo, err := r.open()
	if err != nil {
		return err
	}

	observability.Logger(ctx).Info("Adding git remote", logfields.Remote(name), logfields.URL(Redact(url)))
	_, err = repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
	if err != nil {
		return derrors.GitError(redactError(err, r.secrets...), "failed to add remote").
			WithContext("remote", name).
			Build()
	}
	return nil
}

// Fetch fetches the remote's default refspecs into refs/remotes/<remote>/*.
func (r *Repo) Fetch(ctx context.Context, remote string) error {
	observability.Logger(ctx).Info("Fetching remote", logfields.Remote(remote))
	return r.fetch(ctx, remote, nil)
}

// FetchBranch fetches branch from remote into the local branch of the same
// name, creating it when missing.
func (r *Repo) FetchBranch(ctx context.Context, remote, branch string) error {
	spec := BranchRefSpec(branch)
	if err := spec.Validate(); err != nil {
		return derrors.WrapError(err, derrors.CategoryValidation, "invalid branch name").
			WithContext("branch", branch).
			Build()
	}
	observability.Logger(ctx).Info("Fetching branch", logfields.Remote(remote), logfields.Branch(branch))
	return r.fetch(ctx, remote, []config.RefSpec{spec})
}

// BranchRefSpec maps a remote branch onto the local branch with the same name.
func BranchRefSpec(branch string) config.RefSpec {
	return config.RefSpec(fmt.Sprintf("refs/heads/%[1]s:refs/heads/%[1]s", branch))
}

func (r *Repo) fetch(ctx context.Context, remote string, specs []config.RefSpec) error {
	repo, err := r.open()
	if err != nil {
		return err
	}

	err = repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: remote,
		RefSpecs:   specs,
		Auth:       r.auth,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		observability.Logger(ctx).Debug("Remote already up to date", logfields.Remote(remote))
		return nil
	}
	if err != nil {
		return derrors.GitError(redactError(err, r.secrets...), "fetch failed").
			WithContext("remote", remote).
			Build()
	}
	return nil
}
