package app

import (
	"os"
	"strconv"
	"time"
)

// Config holds the host settings read from the environment.
type Config struct {
	Port                string        // SERVER_PORT (default: 8080)
	AllowedOrigins      string        // ALLOWED_ORIGINS, comma separated; empty disables CORS
	LogLevel            string        // LOG_LEVEL: debug, info, warn, error (default: info)
	ShutdownGracePeriod time.Duration // SHUTDOWN_GRACE_PERIOD (default: 10s)
}

// LoadConfig reads Config from the environment. Call godotenv.Load first to
// pick up a .env file.
func LoadConfig() Config {
	return Config{
		Port:                getEnvOrDefault("SERVER_PORT", "8080"),
		AllowedOrigins:      os.Getenv("ALLOWED_ORIGINS"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
