package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.6, cfg.ConfidenceThreshold)
	assert.Equal(t, 30, cfg.TopKeywords)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	content := `{
		"top_keywords": 15,
		"tone": "aggressive",
		"listen_addr": ":9000"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.TopKeywords)
	assert.Equal(t, "aggressive", cfg.Tone)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	// Untouched fields keep defaults.
	assert.Equal(t, 0.6, cfg.KeywordWeight)
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate_RejectsUnknownTone(t *testing.T) {
	cfg := Default()
	cfg.Tone = "flowery"

	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsUnbalancedWeights(t *testing.T) {
	cfg := Default()
	cfg.KeywordWeight = 0.9

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights must sum to 1.0")
}

func TestLoad_APIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key-from-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "test-key-from-env", cfg.APIKey)
}
