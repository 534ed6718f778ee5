package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port            string
	Environment     string
	LogLevel        string
	BodyLimitBytes  int
	CacheTTL        time.Duration
	RateLimitPerMin int
	ForecastMonths  int
}

// Load initializes configuration from environment variables, reading a .env
// file first if one is present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "production"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		BodyLimitBytes:  getEnvInt("BODY_LIMIT_BYTES", 4*1024*1024),
		CacheTTL:        time.Duration(getEnvInt("CACHE_TTL_MINUTES", 60)) * time.Minute,
		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MIN", 100),
		ForecastMonths:  6,
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid integer in environment, using default")
		return defaultValue
	}
	return n
}
