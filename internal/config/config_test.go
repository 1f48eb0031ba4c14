package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-1.5-flash-latest", cfg.AI.Model)
	assert.Equal(t, 5*time.Second, cfg.AITimeout())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: \"9090\"\n  mode: \"production\"\nai:\n  timeout: \"2s\"\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, 2*time.Second, cfg.AITimeout())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o600))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("AI_ENABLED", "true")
	t.Setenv("AI_API_KEY", "test-key")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestLoadConfig_RejectsInvalidMode(t *testing.T) {
	t.Setenv("SERVER_MODE", "staging")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_RejectsEnabledAIWithoutKey(t *testing.T) {
	t.Setenv("AI_ENABLED", "true")
	t.Setenv("AI_API_KEY", "")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_RejectsBadTimeout(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "soon")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
