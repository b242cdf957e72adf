package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFrom(t *testing.T, dir string) *Config {
	t.Helper()
	t.Setenv("LECTERN_CONFIG_DIR", dir)
	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg := loadFrom(t, t.TempDir())

	assert.False(t, cfg.IsAuthenticated())
	assert.Equal(t, DefaultLookaheadDays, cfg.LookaheadDays())
	assert.Equal(t, DefaultExtraWeeks, cfg.ExtraWeeks())
	assert.Equal(t, time.Sunday, cfg.WeekStart())
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	cfg := loadFrom(t, dir)
	cfg.Set("base_url", "https://school.example.edu")
	cfg.Set("token", "sekrit")
	cfg.Set("week_start", "monday")
	require.NoError(t, cfg.Save())

	_, err := os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	reloaded := loadFrom(t, dir)
	assert.True(t, reloaded.IsAuthenticated())
	assert.Equal(t, "https://school.example.edu", reloaded.BaseURL())
	assert.Equal(t, "sekrit", reloaded.Token())
	assert.Equal(t, time.Monday, reloaded.WeekStart())
}

func TestIsAuthenticated_NeedsBothFields(t *testing.T) {
	cfg := loadFrom(t, t.TempDir())

	cfg.Set("token", "sekrit")
	assert.False(t, cfg.IsAuthenticated(), "token alone is not enough")

	cfg.Set("base_url", "https://school.example.edu")
	assert.True(t, cfg.IsAuthenticated())
}

func TestWeekStart_ParsesNamesCaseInsensitively(t *testing.T) {
	cfg := loadFrom(t, t.TempDir())

	cfg.Set("week_start", "Wednesday")
	assert.Equal(t, time.Wednesday, cfg.WeekStart())

	cfg.Set("week_start", "someday")
	assert.Equal(t, time.Sunday, cfg.WeekStart(), "unknown names fall back to sunday")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LECTERN_LOOKAHEAD_DAYS", "7")
	cfg := loadFrom(t, t.TempDir())

	assert.Equal(t, 7, cfg.LookaheadDays())
}
