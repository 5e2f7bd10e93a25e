package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/creator-studio-backend/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "stub", cfg.ScriptBackend)
	assert.Equal(t, "stub", cfg.TTSBackend)
	assert.Equal(t, "./generated", cfg.OutputDir)
	assert.Equal(t, 72, cfg.AssetTTLHours)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("AI_SCRIPT_BACKEND", "gemini")
	t.Setenv("CORS_ORIGINS", "https://studio.example.com,https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "gemini", cfg.ScriptBackend)
	assert.Equal(t, []string{"https://studio.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}
