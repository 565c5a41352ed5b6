package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("NEUROBLOCK_DB", "")
	t.Setenv("NEUROBLOCK_DEFAULT_MINUTES", "")
	t.Setenv("NEUROBLOCK_NOTIFICATIONS", "")
	t.Setenv("NEUROBLOCK_LOG_USE_CASES", "")

	cfg := LoadConfig()
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, 25, cfg.DefaultDurationMin)
	assert.True(t, cfg.Notifications)
	assert.False(t, cfg.LogUseCases)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("NEUROBLOCK_DB", "/tmp/focus.db")
	t.Setenv("NEUROBLOCK_DEFAULT_MINUTES", "50")
	t.Setenv("NEUROBLOCK_NOTIFICATIONS", "false")
	t.Setenv("NEUROBLOCK_LOG_USE_CASES", "true")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/focus.db", cfg.DBPath)
	assert.Equal(t, 50, cfg.DefaultDurationMin)
	assert.False(t, cfg.Notifications)
	assert.True(t, cfg.LogUseCases)
}

func TestLoadConfig_RejectsOutOfRangeMinutes(t *testing.T) {
	t.Setenv("NEUROBLOCK_DEFAULT_MINUTES", "3")
	assert.Equal(t, 25, LoadConfig().DefaultDurationMin)

	t.Setenv("NEUROBLOCK_DEFAULT_MINUTES", "481")
	assert.Equal(t, 25, LoadConfig().DefaultDurationMin)

	t.Setenv("NEUROBLOCK_DEFAULT_MINUTES", "banana")
	assert.Equal(t, 25, LoadConfig().DefaultDurationMin)
}

func TestResolveDBPath(t *testing.T) {
	cfg := Config{DBPath: "/var/data/focus.db"}
	path, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/var/data/focus.db", path)

	path, err = Config{}.ResolveDBPath()
	require.NoError(t, err)
	assert.Contains(t, path, ".neuroblock")
}
