package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file overriding some defaults
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `log-level: debug
input-path: ./day9.txt
simulation:
  multiplier: 10
  progress-bar: true
  max-last-marble: 5000
redis:
  enabled: true
  host: cache
  result-ttl: 1h
  db: 3
  timeout: 500ms
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: file values win and the rest fall back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "./day9.txt", conf.InputPath)
		assert.Equal(t, 10, conf.Simulation.Multiplier)
		assert.Equal(t, 20, conf.Simulation.ProgressSteps)
		assert.Equal(t, 5000, conf.Simulation.MaxLastMarble)
		assert.True(t, conf.Simulation.ProgressBar)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, time.Hour, conf.Redis.ResultTTL)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 3, conf.Redis.DB)
		assert.Equal(t, 500*time.Millisecond, conf.Redis.Timeout)
	})

	t.Run("Falls back to the environment when the file is missing", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "8081")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 100, conf.Simulation.Multiplier)
		assert.Equal(t, 10_000_000, conf.Simulation.MaxLastMarble)
		assert.False(t, conf.Redis.Enabled)
		assert.Zero(t, conf.Redis.DB)
		assert.Equal(t, 2*time.Second, conf.Redis.Timeout)
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("simulation: [not, a, map"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})
}
