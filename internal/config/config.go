package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/doctasks/internal/errors"
	"git.home.luguber.info/inful/doctasks/internal/logfields"
)

// DefaultPath is the configuration file looked up when -c is not given.
const DefaultPath = "doctasks.yaml"

// DefaultServeAddress is where mkdocs serve listens unless told otherwise.
const DefaultServeAddress = "127.0.0.1:8000"

// Config represents the doctasks configuration. Every field has a default, so
// the file is optional.
type Config struct {
	Project      string   `yaml:"project"`       // Site path segment served by mkdocs, e.g. "spok"
	Repository   string   `yaml:"repository"`    // owner/name on the git host
	GitHubHost   string   `yaml:"github_host"`   // Host used for the authenticated publish remote
	Python       string   `yaml:"python"`        // Interpreter used to run "-m pip"
	MkDocs       string   `yaml:"mkdocs"`        // mkdocs executable
	Tooling      []string `yaml:"tooling"`       // Installer tooling upgraded before deps
	Deps         []string `yaml:"deps"`          // Documentation dependencies, installed in order
	ServeAddress string   `yaml:"serve_address"` // host:port mkdocs serve listens on and the browser opens
	RemoteName   string   `yaml:"remote_name"`   // Remote added for CI publishing
	PagesBranch  string   `yaml:"pages_branch"`  // Branch the site is deployed to
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Project:      "spok",
		Repository:   "FollowTheProcess/spok",
		GitHubHost:   "github.com",
		Python:       "python3",
		MkDocs:       "mkdocs",
		Tooling:      []string{"pip", "setuptools", "wheel"},
		Deps:         []string{"mkdocs", "mkdocs-material", "mkdocs-include-markdown-plugin"},
		ServeAddress: DefaultServeAddress,
		RemoteName:   "gh-token",
		PagesBranch:  "gh-pages",
	}
}

// Load reads the configuration file at configPath. A missing file yields the
// defaults. Environment variables in the file are expanded before parsing.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("No configuration file, using defaults", logfields.Path(configPath))
		return Default(), nil
	}
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse(bytes.NewReader([]byte(os.ExpandEnv(string(data)))))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	slog.Debug("Loaded configuration", logfields.Path(configPath))
	return cfg, nil
}

// Parse decodes a configuration document, applies defaults for omitted
// fields and validates the result. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "failed to unmarshal config").Fatal().Build()
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Project == "" {
		c.Project = d.Project
	}
	if c.Repository == "" {
		c.Repository = d.Repository
	}
	if c.GitHubHost == "" {
		c.GitHubHost = d.GitHubHost
	}
	if c.Python == "" {
		c.Python = d.Python
	}
	if c.MkDocs == "" {
		c.MkDocs = d.MkDocs
	}
	if c.Tooling == nil {
		c.Tooling = d.Tooling
	}
	if c.Deps == nil {
		c.Deps = d.Deps
	}
	if c.ServeAddress == "" {
		c.ServeAddress = d.ServeAddress
	}
	if c.RemoteName == "" {
		c.RemoteName = d.RemoteName
	}
	if c.PagesBranch == "" {
		c.PagesBranch = d.PagesBranch
	}
}

// ServeURL is the address opened in the browser by the serve task.
func (c *Config) ServeURL() string {
	return "http://" + c.ServeAddress + "/" + strings.Trim(c.Project, "/") + "/"
}

// DevAddr is the --dev-addr passed to mkdocs serve. It is empty for the
// default address so mkdocs.yml keeps control of dev_addr.
func (c *Config) DevAddr() string {
	if c.ServeAddress == DefaultServeAddress {
		return ""
	}
	return c.ServeAddress
}

// AuthenticatedURL builds the https remote URL carrying token as credentials.
func (c *Config) AuthenticatedURL(token string) string {
	return "https://" + token + "@" + c.GitHubHost + "/" + c.Repository + ".git"
}

// Init writes the default configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
