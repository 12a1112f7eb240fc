package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string

	DatabaseURL  string
	DatabaseName string

	JobsDefaultLimit int

	APIRateLimitRPS     float64
	APIRateLimitBurst   int
	APIMaxInFlight      int
	APIBackpressureWait int
	CORSAllowedOrigins  string
}

// Load reads configuration from the environment. DATABASE_URL may be empty;
// the audit store is optional and its absence never blocks startup.
func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8000"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		DatabaseURL:  mustEnv("DATABASE_URL", ""),
		DatabaseName: mustEnv("DATABASE_NAME", ""),

		JobsDefaultLimit: mustEnvInt("JOBS_DEFAULT_LIMIT", 20),

		APIRateLimitRPS:     mustEnvFloat("API_RATE_LIMIT_RPS", 0),
		APIRateLimitBurst:   mustEnvInt("API_RATE_LIMIT_BURST", 1),
		APIMaxInFlight:      mustEnvInt("API_MAX_IN_FLIGHT", 0),
		APIBackpressureWait: mustEnvInt("API_BACKPRESSURE_WAIT_MS", 100),
		CORSAllowedOrigins:  mustEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
