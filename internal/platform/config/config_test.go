package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []time.Weekday{time.Sunday}, cfg.RestDays)
	assert.Equal(t, 4, cfg.MaxConcurrentSlips)
	assert.Equal(t, 10*time.Second, cfg.SlipRenderTimeout)
	assert.True(t, cfg.RunMigrations)
}

func TestLoadRestDays(t *testing.T) {
	t.Setenv("REST_DAYS", "Saturday,Sunday")
	cfg := Load()
	assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, cfg.RestDays)
}

func TestLoadRestDaysInvalidFallsBack(t *testing.T) {
	t.Setenv("REST_DAYS", "Funday")
	cfg := Load()
	assert.Equal(t, []time.Weekday{time.Sunday}, cfg.RestDays)
}

func TestValidate(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/ems")
	cfg := Load()
	require.NoError(t, cfg.Validate())

	cfg.DatabaseURL = ""
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.EmailEnabled = true
	cfg.SMTPHost = ""
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.MaxConcurrentSlips = 0
	assert.Error(t, cfg.Validate())
}
