package config

import (
	"strings"

	derrors "git.home.luguber.info/inful/doctasks/internal/errors"
)

// Validate checks the invariants every task relies on.
func (c *Config) Validate() error {
	if len(c.Deps) == 0 {
		return derrors.ConfigError("deps must list at least one package").WithContext("field", "deps").Build()
	}
	for _, field := range []struct{ name, value string }{
		{"project", c.Project},
		{"python", c.Python},
		{"mkdocs", c.MkDocs},
		{"serve_address", c.ServeAddress},
		{"remote_name", c.RemoteName},
		{"pages_branch", c.PagesBranch},
	} {
		if strings.TrimSpace(field.value) == "" {
			return derrors.ConfigError("required configuration missing").WithContext("field", field.name).Build()
		}
	}
	for _, dep := range c.Deps {
		if strings.TrimSpace(dep) == "" || strings.HasPrefix(dep, "-") {
			return derrors.ConfigError("invalid package name in deps").WithContext("package", dep).Build()
		}
	}
	owner, name, ok := strings.Cut(c.Repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return derrors.ConfigError("repository must be in owner/name form").WithContext("repository", c.Repository).Build()
	}
	return nil
}
