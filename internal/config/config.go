// Package config loads runtime settings for the trailbook API.
//
// Values are layered: built-in defaults, then an optional .env file, then the
// process environment. Environment variable names are the upper-case keys
// listed in envKeys.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Weather  WeatherConfig  `koanf:"weather"`
	Media    MediaConfig    `koanf:"media"`
	Logging  LoggingConfig  `koanf:"logging"`
}

type ServerConfig struct {
	Port               string        `koanf:"port"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL         string `koanf:"url"`
	AutoMigrate bool   `koanf:"auto_migrate"`
}

type AuthConfig struct {
	JWTSecret       string        `koanf:"jwt_secret"`
	AccessTokenTTL  time.Duration `koanf:"access_token_ttl"`
	RefreshTokenTTL time.Duration `koanf:"refresh_token_ttl"`
	GoogleClientID  string        `koanf:"google_client_id"`
}

// WeatherConfig configures the OpenWeatherMap proxy. An empty APIKey means the
// proxy answers 503 without calling out.
type WeatherConfig struct {
	APIKey  string        `koanf:"api_key"`
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

type MediaConfig struct {
	BaseURL string `koanf:"base_url"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

var envKeys = map[string]string{
	"PORT":                 "server.port",
	"CORS_ALLOWED_ORIGINS": "server.cors_allowed_origins",
	"SHUTDOWN_TIMEOUT":     "server.shutdown_timeout",
	"POSTGRES_URL":         "database.url",
	"DB_AUTO_MIGRATE":      "database.auto_migrate",
	"JWT_SECRET":           "auth.jwt_secret",
	"ACCESS_TOKEN_TTL":     "auth.access_token_ttl",
	"REFRESH_TOKEN_TTL":    "auth.refresh_token_ttl",
	"GOOGLE_CLIENT_ID":     "auth.google_client_id",
	"OPENWEATHER_API_KEY":  "weather.api_key",
	"OPENWEATHER_URL":      "weather.url",
	"WEATHER_TIMEOUT":      "weather.timeout",
	"MEDIA_BASE_URL":       "media.base_url",
	"LOG_LEVEL":            "logging.level",
	"LOG_FORMAT":           "logging.format",
	"LOG_FILE":             "logging.file",
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:               "8080",
			CORSAllowedOrigins: []string{"http://localhost:5173"},
			ShutdownTimeout:    10 * time.Second,
		},
		Database: DatabaseConfig{
			AutoMigrate: true,
		},
		Auth: AuthConfig{
			AccessTokenTTL:  60 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
		Weather: WeatherConfig{
			URL:     "https://api.openweathermap.org/data/2.5/weather",
			Timeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads .env (if present) and the environment on top of the defaults and
// validates the result for the API server.
func Load() (*Config, error) {
	cfg, err := Read()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read is Load without validation, for tools that only need a subset of the
// settings.
func Read() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if raw, ok := k.Get("server.cors_allowed_origins").(string); ok {
		origins := make([]string, 0)
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if err := k.Set("server.cors_allowed_origins", origins); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	return cfg, nil
}

// envKey maps an environment variable to its koanf path. Unknown variables
// are dropped.
func envKey(name string) string {
	return envKeys[name]
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("POSTGRES_URL is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return errors.New("token TTLs must be positive")
	}
	if c.Weather.Timeout <= 0 {
		return errors.New("WEATHER_TIMEOUT must be positive")
	}
	return nil
}
