package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/trailbook")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("WEATHER_TIMEOUT", "7s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 7*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, 60*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5/weather", cfg.Weather.URL)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/trailbook")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
