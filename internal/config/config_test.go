package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "http://localhost:5000", cfg.OCRBaseURL)
	assert.Equal(t, 6*time.Second, cfg.RitualCooldown)
	assert.Equal(t, 5, cfg.MaxUnits)
	assert.False(t, cfg.UsesPostgres())
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidCooldown(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("RITUAL_COOLDOWN_SECONDS", "abc")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "u",
		DBPassword: "p",
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "ritualbot",
	}
	assert.Equal(t, "postgres://u:p@db:5432/ritualbot?sslmode=disable", cfg.GetDBConnString())
	assert.True(t, cfg.UsesPostgres())
}
