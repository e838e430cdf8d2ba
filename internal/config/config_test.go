package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"print4me/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Server.Port)
	assert.Equal(t, "local", cfg.Storage.Provider)
	assert.Equal(t, "smtp", cfg.Email.Provider)
	assert.Equal(t, int64(20*1024*1024), cfg.Email.AttachmentLimitBytes)
	assert.Equal(t, 2*time.Minute, cfg.Email.SendTimeout)
	assert.Equal(t, int64(25), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, 5, cfg.Upload.MaxFiles)
	assert.Equal(t, 30*time.Minute, cfg.Upload.SweepAge)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.SMTP.Configured())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PRINT4ME_CORS_ALLOWED_ORIGINS", "https://print4me.app, http://localhost:19006")
	t.Setenv("PRINT4ME_SMTP_HOST", "smtp.example.com")
	t.Setenv("PRINT4ME_SMTP_USER", "orders@example.com")
	t.Setenv("PRINT4ME_SMTP_PASSWORD", "secret")
	t.Setenv("PRINT4ME_SMTP_SECURE", "false")
	t.Setenv("PRINT4ME_EMAIL_ADMIN_EMAIL", "admin@example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://print4me.app", "http://localhost:19006"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "admin@example.com", cfg.Email.AdminEmail)
	assert.Equal(t, "orders@example.com", cfg.SenderAddress())
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "8081")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Server.Port)
}

func TestUploadConfig_Limits(t *testing.T) {
	u := config.UploadConfig{MaxFileSizeMB: 25, MaxFiles: 5}

	assert.Equal(t, int64(25*1024*1024), u.MaxFileSizeBytes())
	assert.Equal(t, int64(5*25*1024*1024+1024*1024), u.MaxRequestBytes())
}

func TestConfig_SenderAddressFallbacks(t *testing.T) {
	cfg := config.Config{Gmail: config.GmailConfig{User: "print4me@gmail.com", AppPassword: "x"}}
	assert.Equal(t, "print4me@gmail.com", cfg.SenderAddress())

	cfg.Email.FromAddress = "noreply@print4me.app"
	assert.Equal(t, "noreply@print4me.app", cfg.SenderAddress())
}
