package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, time.Second, cfg.Tick.Period)
	assert.Equal(t, "15:04:05", cfg.Tick.Layout)
	assert.Equal(t, 1024, cfg.History.TickSize)
	assert.Equal(t, 512, cfg.History.LogSize)
	assert.Empty(t, cfg.Log.File)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
http_addr: ":9090"
tick:
  period: 250ms
  layout: "15:04"
history:
  tick_size: 32
`), 0o644))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.Tick.Period)
	assert.Equal(t, "15:04", cfg.Tick.Layout)
	assert.Equal(t, 32, cfg.History.TickSize)
	assert.Equal(t, 512, cfg.History.LogSize, "unset fields keep defaults")
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("tick: ["), 0o644))
	_, err = LoadConfig(file)
	assert.Error(t, err)
}

func TestLoadConfig_ZeroPeriodFallsBack(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("tick:\n  period: 0s\n"), 0o644))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Tick.Period)
}
