// Package projectconfig provides the ProjectConfig struct and loader
// for .prepdeck.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for project configuration. New() references them and
// no other code should duplicate them.
const (
	DefaultServerURL      = "http://localhost:8000"
	DefaultTimeoutSeconds = 30
	DefaultMaxRetries     = 2

	DefaultSessionsDir = ".prepdeck/sessions"

	DefaultServePort = 8000
)

// EnvServerURL overrides the configured server URL when set.
const EnvServerURL = "PREPDECK_SERVER_URL"

// ServerConfig holds remote interview service settings.
type ServerConfig struct {
	URL     string `yaml:"url,omitempty"`
	Timeout int    `yaml:"timeout,omitempty"`
	Retries *int   `yaml:"retries,omitempty"`
}

// SessionsConfig holds session event log settings.
type SessionsConfig struct {
	Log *bool  `yaml:"log,omitempty"`
	Dir string `yaml:"dir,omitempty"`
}

// ServeConfig holds settings for the built-in mock server.
type ServeConfig struct {
	Port int `yaml:"port,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .prepdeck.yaml.
type ProjectConfig struct {
	Server   ServerConfig   `yaml:"server,omitempty"`
	Sessions SessionsConfig `yaml:"sessions,omitempty"`
	Serve    ServeConfig    `yaml:"serve,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Server: ServerConfig{
			URL:     DefaultServerURL,
			Timeout: DefaultTimeoutSeconds,
			Retries: intPtr(DefaultMaxRetries),
		},
		Sessions: SessionsConfig{
			Log: boolPtr(true),
			Dir: DefaultSessionsDir,
		},
		Serve: ServeConfig{
			Port: DefaultServePort,
		},
	}
}

// Load finds .prepdeck.yaml by walking up from startDir (max 10
// levels), unmarshals it, and fills in missing fields with defaults.
// The PREPDECK_SERVER_URL environment variable overrides the server
// URL from any source. If no config file is found, returns defaults
// with a nil error. Real I/O errors (e.g. permission denied) are
// returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("loading .prepdeck.yaml: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .prepdeck.yaml: %w", err)
	}

	mergeConfig(cfg, &fileCfg)
	applyEnv(cfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .prepdeck.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".prepdeck.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero file values onto defaults.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Server.URL != "" {
		dst.Server.URL = src.Server.URL
	}
	if src.Server.Timeout != 0 {
		dst.Server.Timeout = src.Server.Timeout
	}
	if src.Server.Retries != nil {
		dst.Server.Retries = src.Server.Retries
	}
	if src.Sessions.Log != nil {
		dst.Sessions.Log = src.Sessions.Log
	}
	if src.Sessions.Dir != "" {
		dst.Sessions.Dir = src.Sessions.Dir
	}
	if src.Serve.Port != 0 {
		dst.Serve.Port = src.Serve.Port
	}
}

func applyEnv(cfg *ProjectConfig) {
	if url := os.Getenv(EnvServerURL); url != "" {
		cfg.Server.URL = url
	}
}

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }
