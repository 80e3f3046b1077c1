package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	derrors "git.home.luguber.info/inful/doctasks/internal/errors"
	"git.home.luguber.info/inful/doctasks/internal/logfields"
)

const (
	// EnvCI marks a continuous integration run when set to any non-empty value.
	EnvCI = "CI"
	// EnvToken holds the credential used to publish the site.
	EnvToken = "GITHUB_TOKEN"
)

// MissingTokenMessage is reported when publish runs without a credential.
const MissingTokenMessage = "cannot deploy docs without a $GITHUB_TOKEN environment variable"

// Env is the process environment as seen by the tasks. It is read once.
type Env struct {
	OnCI  bool
	Token string
}

// LoadEnv reads CI and GITHUB_TOKEN from the process environment.
func LoadEnv() Env {
	return Env{
		OnCI:  os.Getenv(EnvCI) != "",
		Token: os.Getenv(EnvToken),
	}
}

// RequireToken returns the publish credential or an auth error when it is absent.
func RequireToken(env Env) (string, error) {
	if env.Token == "" {
		return "", derrors.AuthError(MissingTokenMessage).WithContext("variable", EnvToken).Build()
	}
	return env.Token, nil
}

// LoadDotEnv loads the first of .env/.env.local found in dir. Variables
// already present in the environment are not overwritten. Returns the file
// loaded, or "" when none exists.
func LoadDotEnv(dir string) (string, error) {
	for _, name := range []string{".env", ".env.local"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("load %s: %w", path, err)
		}
		slog.Debug("Loaded environment variables", logfields.Path(path))
		return path, nil
	}
	return "", nil
}
