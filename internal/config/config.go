// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// JWTSecret is the HS256 key used to verify bearer tokens. Required.
	JWTSecret string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// OpenWeatherAPIKey enables live weather. Empty means every weather
	// lookup uses mock or seasonal data.
	OpenWeatherAPIKey string

	// OpenWeatherBaseURL is the OpenWeather API host.
	OpenWeatherBaseURL string

	// RedisURL enables the weather cache, e.g. "redis://localhost:6379/0".
	// Empty disables caching.
	RedisURL string

	// WeatherCacheTTL is how long cached weather responses stay fresh.
	WeatherCacheTTL time.Duration

	// WeatherRatePerSec and WeatherRateBurst throttle the weather proxy
	// per client IP.
	WeatherRatePerSec float64
	WeatherRateBurst  int

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64

	// MigrateOnStart applies pending migrations before serving.
	MigrateOnStart bool
}

// Load reads configuration from environment variables and returns a Config.
// Missing required variables and malformed values are reported together
// in a single error.
func Load() (Config, error) {
	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSOrigins:        splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"),
		RedisURL:           os.Getenv("REDIS_URL"),
	}

	var missing, invalid []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	p := parser{invalid: &invalid}
	cfg.WeatherCacheTTL = p.duration("WEATHER_CACHE_TTL", 10*time.Minute)
	cfg.WeatherRatePerSec = p.positiveFloat("WEATHER_RATE_PER_SEC", 5)
	cfg.WeatherRateBurst = int(p.positiveInt("WEATHER_RATE_BURST", 10))
	cfg.MaxBodyBytes = p.positiveInt("MAX_BODY_BYTES", 1<<20)
	cfg.MigrateOnStart = p.boolean("MIGRATE_ON_START", false)

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "required environment variables not set: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		problems = append(problems, "invalid environment variables: "+strings.Join(invalid, ", "))
	}
	if len(problems) > 0 {
		return Config{}, errors.New(strings.Join(problems, "; "))
	}

	return cfg, nil
}

// parser reads typed optional variables, recording every malformed one
// instead of stopping at the first.
type parser struct {
	invalid *[]string
}

func (p parser) fail(key, v string) {
	*p.invalid = append(*p.invalid, fmt.Sprintf("%s=%q", key, v))
}

func (p parser) duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		p.fail(key, v)
		return fallback
	}
	return d
}

func (p parser) positiveFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		p.fail(key, v)
		return fallback
	}
	return f
}

func (p parser) positiveInt(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		p.fail(key, v)
		return fallback
	}
	return n
}

func (p parser) boolean(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v)
		return fallback
	}
	return b
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
