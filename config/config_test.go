package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_PASS", "hunter2")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
	assert.Equal(t, 50, cfg.Content.KeepVersions)
	assert.Equal(t, int64(5<<20), cfg.Content.MaxUploadBytes)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@db.example.com/portfolio")
	t.Setenv("ALLOWED_ORIGINS", "https://site.example.com, https://admin.example.com")
	t.Setenv("CONTENT_KEEP_VERSIONS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres://u:p@db.example.com/portfolio", cfg.Database.URL)
	assert.Equal(t, []string{"https://site.example.com", "https://admin.example.com"}, cfg.App.AllowedOrigins)
	assert.Equal(t, 10, cfg.Content.KeepVersions)
}

func TestValidate_MissingSecrets(t *testing.T) {
	t.Setenv("ADMIN_PASS", "hunter2")
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_PASS", "")
	t.Setenv("ADMIN_PASS_HASH", "")
	_, err = Load()
	assert.Error(t, err)
}
