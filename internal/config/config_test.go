package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // без .env
	t.Setenv("DATASET_URL", "testdata/fe.csv")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "Gunshot", cfg.DatasetForceFilter)
	assert.Equal(t, 30*time.Second, cfg.DatasetTimeout)
	assert.Equal(t, 24*time.Hour, cfg.DatasetCacheTTL)
	assert.Equal(t, "STUSPS", cfg.ShapefileStateField)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 1024, cfg.ChartWidth)
	assert.Equal(t, 600, cfg.ChartHeight)
	assert.Equal(t, 10, cfg.TopCitiesLimit)
	assert.Nil(t, cfg.APIKeys)
}

func TestLoadConfig_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATASET_URL", "https://example.com/fe.csv")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATASET_TIMEOUT", "5s")
	t.Setenv("DATASET_CACHE_TTL", "not-a-duration")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("TOP_CITIES_LIMIT", "5")
	t.Setenv("API_KEYS", " key-1, ,key-2 ")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.DatasetTimeout)
	assert.Equal(t, 24*time.Hour, cfg.DatasetCacheTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 5, cfg.TopCitiesLimit)
	assert.Equal(t, []string{"key-1", "key-2"}, cfg.APIKeys)
}

func TestLoadConfig_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("missing dataset", func(t *testing.T) {
		t.Setenv("DATASET_URL", "")
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATASET_URL")
	})

	t.Run("bad chart size", func(t *testing.T) {
		t.Setenv("DATASET_URL", "fe.csv")
		t.Setenv("CHART_WIDTH", "0")
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CHART_WIDTH")
	})
}

// chdir меняет рабочий каталог на время теста (аналог t.Chdir из Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
