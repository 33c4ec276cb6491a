package config

import "os"

// Config holds all application configuration
type Config struct {
	Port        string
	LogLevel    string
	SwaggerHost string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SwaggerHost: getEnv("SWAGGER_HOST", "localhost:8080"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
