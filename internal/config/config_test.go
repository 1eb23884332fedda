package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, 8*time.Hour, cfg.AdminSessionExpiration)
	assert.True(t, cfg.AdminCookieSecure)
	assert.False(t, cfg.AdminEnabled())
	assert.True(t, cfg.RateLimitRegistrationEnabled)
	assert.Equal(t, "enrollment", cfg.MetricsNamespace)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("ADMIN_PASSWORD_HASH", "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA")
	t.Setenv("ADMIN_SESSION_EXPIRATION_SECONDS", "60")
	t.Setenv("RATE_LIMIT_LOGIN_BURST", "2")
	t.Setenv("TIMEZONE", "UTC")

	cfg := Load()

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.True(t, cfg.AdminEnabled())
	assert.Equal(t, time.Minute, cfg.AdminSessionExpiration)
	assert.Equal(t, 2, cfg.RateLimitLoginBurst)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestLoad_DotEnvInParentDirectory(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("METRICS_PORT=9191\n"), 0o600))

	t.Chdir(child)
	t.Cleanup(func() { _ = os.Unsetenv("METRICS_PORT") })

	cfg := Load()

	assert.Equal(t, 9191, cfg.MetricsPort)
}

func TestGetGinMode(t *testing.T) {
	tests := []struct {
		logLevel string
		expected string
	}{
		{logLevel: "debug", expected: "debug"},
		{logLevel: "info", expected: "release"},
		{logLevel: "error", expected: "release"},
		{logLevel: "unknown", expected: "release"},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			assert.Equal(t, tt.expected, cfg.GetGinMode())
		})
	}
}
