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
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("BATCH_CONCURRENCY", "4")
	t.Setenv("NOTIFIER_WINDOW", "15m")
	t.Setenv("APP_HOST", "events.local:9000")
	t.Setenv("FONT_BOLD", "/fonts/Inter-Bold.ttf")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Storage.MinIO.UseSSL)
	assert.Equal(t, "disk", cfg.Storage.Backend)
	assert.Equal(t, 4, cfg.Render.BatchConcurrency)
	assert.True(t, cfg.Render.CleanupOrphans)
	assert.Equal(t, 15*time.Minute, cfg.Notifier.Window)
	assert.Equal(t, "http://events.local:9000", cfg.PublicBaseURL)
	assert.Equal(t, 5, cfg.Database.PingAttempts)
	assert.Equal(t, "/fonts/Inter-Bold.ttf", cfg.Render.FontBold)
	assert.Empty(t, cfg.Render.FontRegular)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_DURATION_VAR"

	t.Setenv(key, "90s")
	assert.Equal(t, 90*time.Second, getEnvDuration(key, time.Minute))

	t.Setenv(key, "-5s")
	assert.Equal(t, time.Minute, getEnvDuration(key, time.Minute))

	t.Setenv(key, "soon")
	assert.Equal(t, time.Minute, getEnvDuration(key, time.Minute))
}

func TestLoadBranding(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		b, err := LoadBranding("")
		require.NoError(t, err)
		assert.Equal(t, DefaultBranding(), b)
	})

	t.Run("overlay from yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "branding.yaml")
		require.NoError(t, os.WriteFile(path, []byte("organization: Tech Fest 2025\nwatermark: false\n"), 0o644))

		b, err := LoadBranding(path)
		require.NoError(t, err)
		assert.Equal(t, "Tech Fest 2025", b.Organization)
		assert.False(t, b.Watermark)
		assert.Equal(t, "logo.png", b.LogoFile)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadBranding(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("organization: [unterminated"), 0o644))

		_, err := LoadBranding(path)
		assert.Error(t, err)
	})
}
