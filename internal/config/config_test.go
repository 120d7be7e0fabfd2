package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("UPLOAD_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, int64(10*1024*1024), cfg.Upload.MaxBytes)
	require.Equal(t, time.Hour, cfg.Upload.TTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("UPLOAD_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Server.Port)
	require.Equal(t, int64(1024), cfg.Upload.MaxBytes)
	require.Equal(t, 30*time.Minute, cfg.Upload.TTL)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestMalformedValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	t.Setenv("UPLOAD_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, int64(10*1024*1024), cfg.Upload.MaxBytes)
	require.Equal(t, time.Hour, cfg.Upload.TTL)
}
