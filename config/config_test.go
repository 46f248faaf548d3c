package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "1.0.0", cfg.APIVersion)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.InDelta(t, 0.1, cfg.Extraction.Temperature, 1e-9)
	assert.Equal(t, 90, cfg.Extraction.RecentDays)
	assert.True(t, cfg.Database.AuditEnabled)
	assert.Equal(t, "", cfg.Storage.Type)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("EXTRACTION_TEMPERATURE", "0.3")
	t.Setenv("RECENT_DAYS", "30")
	t.Setenv("AUDIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.InDelta(t, 0.3, cfg.Extraction.Temperature, 1e-9)
	assert.Equal(t, 30, cfg.Extraction.RecentDays)
	assert.False(t, cfg.Database.AuditEnabled)
}

func TestLoadRejectsTemperatureOutOfBounds(t *testing.T) {
	t.Setenv("EXTRACTION_TEMPERATURE", "1.5")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownStorageType(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "ftp")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveRecentDays(t *testing.T) {
	t.Setenv("RECENT_DAYS", "0")

	_, err := Load()
	assert.Error(t, err)
}
