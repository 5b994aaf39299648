package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("HTTP_BODY_LIMIT_BYTES", "")
	t.Setenv("INTAKE_DISPLAY_SUBMISSIONS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 65536, cfg.App.BodyLimitBytes)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Intake.DisplaySubmissions)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("INTAKE_DISPLAY_SUBMISSIONS", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.App.Addr())
	assert.Equal(t, 5*time.Second, cfg.App.RequestTimeout())
	assert.False(t, cfg.Intake.DisplaySubmissions)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadRejectsBadBodyLimit(t *testing.T) {
	t.Setenv("HTTP_BODY_LIMIT_BYTES", "lots")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("HTTP_BODY_LIMIT_BYTES", "-1")
	_, err = Load()
	require.Error(t, err)
}

func TestMalformedNumbersFallBack(t *testing.T) {
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "soon")
	t.Setenv("INTAKE_DISPLAY_SUBMISSIONS", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.True(t, cfg.Intake.DisplaySubmissions)
}

func TestRequestTimeoutDisabled(t *testing.T) {
	assert.Equal(t, time.Duration(0), AppConfig{RequestTimeoutSeconds: 0}.RequestTimeout())
}
