package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/kagent-dev/chatbot-client/kagent"
)

// Config holds the environment-backed defaults shared by the demo binaries.
// Flags can override every field; a zero-flag run against a local server
// needs none of the variables set.
type Config struct {
	BaseURL string        // KAGENT_BASE_URL
	Timeout time.Duration // KAGENT_TIMEOUT
	Retries int           // KAGENT_RETRIES
}

// Load reads configuration from the environment, loading .env first when
// one exists in the working directory.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	return &Config{
		BaseURL: getEnv("KAGENT_BASE_URL", kagent.DefaultBaseURL),
		Timeout: getEnvAsDuration("KAGENT_TIMEOUT", 30*time.Second),
		Retries: getEnvAsInt("KAGENT_RETRIES", 0),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}
