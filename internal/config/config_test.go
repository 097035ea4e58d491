package config_test

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/kiku/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Draft.LoweredWording)
	assert.Equal(t, 15*time.Second, cfg.Client.Timeout())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("KIKU_SERVER_PORT", "9090")
	t.Setenv("KIKU_LOG_LEVEL", "debug")
	t.Setenv("KIKU_DRAFT_LOWERED_WORDING", "false")
	t.Setenv("KIKU_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("KIKU_CLIENT_ENDPOINT", "https://kiku.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Draft.LoweredWording)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://kiku.example", cfg.Client.Endpoint)
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	require.NoError(t, config.InitLogger(config.LogConfig{Level: "warn", Format: "text"}))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Error(t, config.InitLogger(config.LogConfig{Level: "loud"}))
}
