package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.DBPath)
	assert.False(t, cfg.DarkMode)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goalboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/goals.db\ndark_mode: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/goals.db", cfg.DBPath)
	assert.True(t, cfg.DarkMode)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goalboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestResolveDBPathPrecedence(t *testing.T) {
	cfg := &Config{DBPath: "/from/config.db"}

	t.Setenv(EnvDBPath, "/from/env.db")
	got, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", got)

	t.Setenv(EnvDBPath, "")
	got, err = cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/from/config.db", got)
}

func TestResolveDBPathDefault(t *testing.T) {
	t.Setenv(EnvDBPath, "")
	got, err := (&Config{}).ResolveDBPath()
	require.NoError(t, err)
	assert.Contains(t, got, ".goalboard.db")
}
