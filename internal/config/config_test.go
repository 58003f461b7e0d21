package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "backend.yaml", "base_url: http://localhost:8000\n")
	path := writeConfig(t, dir, "fleetwatch.yaml", `
Name: fleetwatch
Host: 127.0.0.1
Port: 8888
Env: dev
Backend:
  File: backend.yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.False(t, cfg.IsTestEnv())
	assert.True(t, cfg.SyncOnStart, "defaults on")
	assert.Equal(t, dir, cfg.BaseDir())

	require.NotNil(t, cfg.Backend.Value)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.Value.BaseURL)
}

func TestLoad_DefaultsEnvToTest(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "fleetwatch.yaml", `
Name: fleetwatch
Host: 127.0.0.1
Port: 8888
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.True(t, cfg.IsTestEnv())
	assert.Nil(t, cfg.Backend.Value, "backend section optional")
}

func TestLoad_RejectsUnknownEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "fleetwatch.yaml", `
Name: fleetwatch
Host: 127.0.0.1
Port: 8888
Env: staging
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env must be one of")
}

func TestLoad_BadBackendSection(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "backend.yaml", "base_url: not-a-url\n")
	path := writeConfig(t, dir, "fleetwatch.yaml", `
Name: fleetwatch
Host: 127.0.0.1
Port: 8888
Backend:
  File: backend.yaml
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load backend config")
}
