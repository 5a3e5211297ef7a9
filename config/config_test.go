package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, "profile_photos", cfg.PhotoDir)
	require.Equal(t, 5*time.Second, cfg.StoreTimeout)
	require.Equal(t, ":8080", cfg.OpsAddr)
	require.False(t, cfg.Debug)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("PHOTO_DIR", "/tmp/photos")
	t.Setenv("STORE_TIMEOUT", "2s")
	t.Setenv("OPS_ADDR", ":9090")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/photos", cfg.PhotoDir)
	require.Equal(t, 2*time.Second, cfg.StoreTimeout)
	require.Equal(t, ":9090", cfg.OpsAddr)
	require.True(t, cfg.Debug)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("STORE_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, cfg.StoreTimeout)
}
