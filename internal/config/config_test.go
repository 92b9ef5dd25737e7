package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads values and applies defaults", func(t *testing.T) {
		// Given: a config file that sets only some values
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nredis:\n  host: redis\nengine:\n  capped-depth: 2\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf := MustLoad(path)

		// Then: set values are read and the rest fall back to defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, 24*time.Hour, conf.GameTTL)
		assert.Equal(t, "redis:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Engine.CappedDepth)
		assert.Equal(t, 3, conf.Engine.DefaultGridSize)
		assert.Equal(t, 10, conf.Engine.MaxGridSize)
	})

	t.Run("Panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
