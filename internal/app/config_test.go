package app_test

import (
	"testing"
	"time"

	"dashboard-customization/internal/app"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "")

	cfg := app.LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "3s")

	cfg := app.LoadConfig()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://a.example, https://b.example", cfg.AllowedOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.ShutdownGracePeriod)

	t.Setenv("SHUTDOWN_GRACE_PERIOD", "5")
	assert.Equal(t, 5*time.Second, app.LoadConfig().ShutdownGracePeriod)

	t.Setenv("SHUTDOWN_GRACE_PERIOD", "soon")
	assert.Equal(t, 10*time.Second, app.LoadConfig().ShutdownGracePeriod)
}
