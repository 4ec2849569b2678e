package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, ":8080", cfg.Server.WebSocketAddress)
	assert.Equal(t, "assets/indoor_tiles.json", cfg.Assets.IndoorTiles)
	assert.Equal(t, 6, cfg.Game.StartHealth)
	assert.Equal(t, 1, cfg.Game.StartAttack)
	assert.Equal(t, 2, cfg.Game.ItemCapacity)
	assert.Equal(t, 3, cfg.Game.BashZombies)
	assert.Equal(t, 4, cfg.Game.MaxCombatDamage)
	assert.Equal(t, []string{"9 PM", "10 PM", "11 PM"}, cfg.Game.ClockLabels)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Game.StartHealth)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
server:
  websocket_address: ":9090"
game:
  start_health: 10
  clock_labels: ["10 PM", "11 PM"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ":9090", cfg.Server.WebSocketAddress)
	assert.Equal(t, 10, cfg.Game.StartHealth)
	assert.Equal(t, []string{"10 PM", "11 PM"}, cfg.Game.ClockLabels)
	// Untouched keys keep their defaults.
	assert.Equal(t, 1, cfg.Game.StartAttack)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [not\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ZIMP_GAME_START_HEALTH", "8")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Game.StartHealth)
}
