package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	OpenAIAPIKey    string `env:"OPENAI_API_KEY" envDefault:"-"`
	OpenAIModel     string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	HTTPAddr        string `env:"HTTP_ADDR" envDefault:":8080"`
	RequestTimeout  int    `env:"REQUEST_TIMEOUT" envDefault:"60"` // seconds
	MaxUploadMB     int64  `env:"MAX_UPLOAD_MB" envDefault:"10"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"th"`
	ProviderRPS     int    `env:"PROVIDER_RPS" envDefault:"2"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o")
	cfg.HTTPAddr = getEnvWithDefault("HTTP_ADDR", ":8080")
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 60)
	cfg.MaxUploadMB = int64(getEnvIntWithDefault("MAX_UPLOAD_MB", 10))
	cfg.DefaultLanguage = getEnvWithDefault("DEFAULT_LANGUAGE", "th")
	cfg.ProviderRPS = getEnvIntWithDefault("PROVIDER_RPS", 2)
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")

	return &cfg, nil
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB * 1024 * 1024
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
