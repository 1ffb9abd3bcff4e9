package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MEDIGUARD_API_URL", "")
	t.Setenv("MEDIGUARD_STEP_INTERVAL_MS", "")
	t.Setenv("MEDIGUARD_STATE_DIR", "/tmp/mg")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MEDIGUARD_MIGRATIONS_DIR", "")

	cfg := Load()

	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.StepInterval)
	assert.Equal(t, time.Second, cfg.SettleDelay)
	assert.Equal(t, 3*time.Second, cfg.NoticeTTL)
	assert.Equal(t, "/tmp/mg/state.json", cfg.StatePath())
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MEDIGUARD_API_URL", "https://api.example.com/")
	t.Setenv("MEDIGUARD_STEP_INTERVAL_MS", "10")
	t.Setenv("MEDIGUARD_HTTP_TIMEOUT_SECONDS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "https://api.example.com", cfg.APIURL)
	assert.Equal(t, 10*time.Millisecond, cfg.StepInterval)
	assert.Equal(t, 60*time.Second, cfg.HTTPTimeout)
}
