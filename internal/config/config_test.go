package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderfeast/internal/difficulty"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, "data", c.Data.Dir)
	assert.Equal(t, 1600.0, c.Map.Width)
	assert.Equal(t, 1200.0, c.Map.Height)
	assert.Equal(t, "normal", c.Difficulty.Preset)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoad_PartialFileKeepsDefaultsElsewhere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\ndifficulty:\n  preset: hard\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", c.Server.Addr)
	assert.Equal(t, "hard", c.Difficulty.Preset)
	assert.Equal(t, "data", c.Data.Dir)
	assert.Equal(t, 1600.0, c.Map.Width)
}

func TestLoad_RejectsUnknownPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty:\n  preset: nightmare\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDifficultySeed_OverridesClamped(t *testing.T) {
	c := &Config{}
	c.ApplyDefaults()
	c.Difficulty.Preset = "hard"
	c.Difficulty.Overrides = &difficulty.Config{TravelTimeTarget: 900}

	cfg, err := c.DifficultySeed()
	require.NoError(t, err)

	hard := difficulty.PresetHard.Config()
	assert.Equal(t, difficulty.MaxTravelTimeTarget, cfg.TravelTimeTarget)
	assert.Equal(t, hard.MinRestaurantDistance, cfg.MinRestaurantDistance)
	assert.Equal(t, hard.PlayerSpeed, cfg.PlayerSpeed)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("WANDERFEAST_ADDR", ":7000")
	t.Setenv("WANDERFEAST_MAP_WIDTH", "2400")
	t.Setenv("DIFFICULTY", "easy")

	c := &Config{}
	c.ApplyDefaults()
	c.ApplyEnv()

	assert.Equal(t, ":7000", c.Server.Addr)
	assert.Equal(t, 2400.0, c.Map.Width)
	assert.Equal(t, "easy", c.Difficulty.Preset)
}

func TestApplyEnv_BadNumberIgnored(t *testing.T) {
	t.Setenv("WANDERFEAST_MAP_WIDTH", "wide")

	c := &Config{}
	c.ApplyDefaults()
	c.ApplyEnv()

	assert.Equal(t, 1600.0, c.Map.Width)
}
