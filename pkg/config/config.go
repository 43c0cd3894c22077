package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	DataDir     string
	HTTPTimeout time.Duration
	LogLevel    string
}

// Load reads configuration once at startup. The base URL is the only setting
// the backend contract cares about; the rest tune the local client.
func Load() *Config {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. installed binary)

	return &Config{
		APIBaseURL:  getEnv("SHORTLING_API_URL", "http://localhost:8080"),
		DataDir:     getEnv("SHORTLING_DATA_DIR", defaultDataDir()),
		HTTPTimeout: getDurationEnv("SHORTLING_HTTP_TIMEOUT", 15*time.Second),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// defaultDataDir is where credentials and the link cache live.
func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "shortling")
	}
	return ".shortling"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
