// File: pkg/config/config.go

// Package config builds the runtime configuration once at startup. Defaults
// come first, an optional .codescope.yaml in the scanned directory overrides
// them, and environment variables supply the remote credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the scanned directory.
const ConfigFileName = ".codescope.yaml"

// DefaultMaxFileBytes is the per-file size ceiling; larger files are skipped,
// not truncated.
const DefaultMaxFileBytes = 1_000_000

// DefaultExcludes lists the entry names and suffix patterns omitted from
// every traversal. A leading '*' marks a suffix-wildcard pattern.
var DefaultExcludes = []string{
	".git",
	".hg",
	".svn",
	".idea",
	".vscode",
	"node_modules",
	"vendor",
	"dist",
	"build",
	"target",
	"__pycache__",
	".venv",
	"venv",
	".DS_Store",
	"*.log",
	"*.lock",
	"*.min.js",
	"*.map",
}

// Config holds everything the generate and analyze pipelines need. It is
// constructed once and passed by value into each component entry point so
// tests can supply alternate exclude sets or endpoints without touching
// process state.
type Config struct {
	Root         string   `yaml:"-"`
	Excludes     []string `yaml:"excludes"`
	MaxFileBytes int64    `yaml:"max_file_bytes"`
	Model        string   `yaml:"model"`
	Endpoint     string   `yaml:"endpoint"`

	// Remote credentials, environment-only.
	APIKey  string `yaml:"-"`
	Referer string `yaml:"-"`
	Title   string `yaml:"-"`
}

// Load builds config from defaults, optional file values under root, and
// environment variables.
func Load(root string) Config {
	c := Config{
		Root:         root,
		Excludes:     append([]string(nil), DefaultExcludes...),
		MaxFileBytes: DefaultMaxFileBytes,
		Model:        "openai/gpt-4o-mini",
		Endpoint:     "https://openrouter.ai/api/v1/chat/completions",
	}

	if b, err := os.ReadFile(filepath.Join(root, ConfigFileName)); err == nil {
		_ = yaml.Unmarshal(b, &c)
	}
	if c.MaxFileBytes <= 0 {
		c.MaxFileBytes = DefaultMaxFileBytes
	}

	c.APIKey = os.Getenv("OPENROUTER_API_KEY")
	c.Referer = os.Getenv("YOUR_SITE_URL")
	c.Title = os.Getenv("YOUR_SITE_NAME")

	return c
}

// RequireAPIKey reports a configuration error when the credential is absent.
// Analysis must not start, and no output file may be produced, without it.
func (c Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("OPENROUTER_API_KEY environment variable is not set")
	}
	return nil
}
