package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDefaults(t *testing.T) {
	cfg, err := Setup("")
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Render.Theme)
	assert.Equal(t, 45, cfg.Render.SquareSize)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 18, cfg.Engine.Depth)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestSetupFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fennec.yaml")
	data := []byte("engine:\n  path: /usr/bin/stockfish\n  threads: 4\nrender:\n  theme: gruvbox\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Setup(path)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/stockfish", cfg.Engine.Path)
	assert.Equal(t, 4, cfg.Engine.Threads)
	assert.Equal(t, 16, cfg.Engine.Hash, "unset keys keep their default")
	assert.Equal(t, "gruvbox", cfg.Render.Theme)
}

func TestSetupEnvOverrides(t *testing.T) {
	t.Setenv("FENNEC_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("FENNEC_ENGINE_DEPTH", "7")

	cfg, err := Setup("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 7, cfg.Engine.Depth)
}

func TestSetupMissingFile(t *testing.T) {
	_, err := Setup(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
