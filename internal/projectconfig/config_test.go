package projectconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadNoConfigFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, DefaultServerURL, cfg.Server.URL)
	require.Equal(t, DefaultTimeoutSeconds, cfg.Server.Timeout)
	require.NotNil(t, cfg.Server.Retries)
	require.Equal(t, DefaultMaxRetries, *cfg.Server.Retries)
	require.NotNil(t, cfg.Sessions.Log)
	require.True(t, *cfg.Sessions.Log)
	require.Equal(t, DefaultSessionsDir, cfg.Sessions.Dir)
	require.Equal(t, DefaultServePort, cfg.Serve.Port)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  url: http://interviews.internal:9000
  timeout: 5
sessions:
  log: false
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, "http://interviews.internal:9000", cfg.Server.URL)
	require.Equal(t, 5, cfg.Server.Timeout)

	// fields the file omits keep their defaults
	require.Equal(t, DefaultMaxRetries, *cfg.Server.Retries)
	require.Equal(t, DefaultSessionsDir, cfg.Sessions.Dir)
	require.Equal(t, DefaultServePort, cfg.Serve.Port)

	require.False(t, *cfg.Sessions.Log)
}

func TestLoadWalksUpToParentDirectories(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "server:\n  url: http://from-root:8000\n")

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(nested)
	require.NoError(t, err)
	require.Equal(t, "http://from-root:8000", cfg.Server.URL)
}

func TestLoadNearestConfigWins(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "server:\n  url: http://outer:8000\n")

	inner := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(inner, 0o755))
	writeConfig(t, inner, "server:\n  url: http://inner:8000\n")

	cfg, err := Load(inner)
	require.NoError(t, err)
	require.Equal(t, "http://inner:8000", cfg.Server.URL)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "server:\n  url: http://from-file:8000\n")
	t.Setenv(EnvServerURL, "http://from-env:8000")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "http://from-env:8000", cfg.Server.URL)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "server: [not a mapping")

	_, err := Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing .prepdeck.yaml")
}

func TestZeroRetriesIsRespected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "server:\n  retries: 0\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Server.Retries)
	require.Equal(t, 0, *cfg.Server.Retries)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".prepdeck.yaml"), []byte(content), 0o644))
}
