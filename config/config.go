// Package config reads storefront settings from the environment.
package config

import "os"

// Config holds the runtime settings for the storefront.
type Config struct {
	Port       string
	APIBaseURL string
	DataDir    string
	LogLevel   string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8000"),
		APIBaseURL: getEnv("API_BASE_URL", "https://api-perfuim.onrender.com/user"),
		DataDir:    getEnv("DATA_DIR", "data"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
