package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, tetris.DefaultConfig(), cfg.Game.EngineConfig())
	assert.Equal(t, uint64(0), cfg.Game.Seed)
	assert.Equal(t, 30, cfg.Display.CellSize)
	assert.Equal(t, 60, cfg.Display.TickRate)
	assert.False(t, cfg.Display.Debug)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.3, cfg.Audio.Volume)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
game:
  width: 12
  fall_interval: 20
  seed: 99
display:
  debug: true
log:
  level: debug
  format: json
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Game.Width)
	assert.Equal(t, 20, cfg.Game.Height, "unset keys keep defaults")
	assert.Equal(t, 20, cfg.Game.FallInterval)
	assert.Equal(t, uint64(99), cfg.Game.Seed)
	assert.True(t, cfg.Display.Debug)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BLOCKFALL_GAME_WIDTH", "14")
	t.Setenv("BLOCKFALL_AUDIO_ENABLED", "false")

	cfg, err := config.Load(writeConfig(t, "game:\n  width: 12\n"))
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Game.Width)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("board too narrow", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "game:\n  width: 2\n"))
		assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
	})

	t.Run("bad volume", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "audio:\n  volume: 3\n"))
		assert.ErrorContains(t, err, "audio.volume")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "log:\n  level: chatty\n"))
		assert.ErrorContains(t, err, "log.level")
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("dropped")
	logger.Warn("kept", "score", 300)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, float64(300), record["score"])
	assert.Equal(t, slog.LevelWarn.String(), record["level"])
}
