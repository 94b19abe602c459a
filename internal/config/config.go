package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"invoiceqc/internal/logger"
)

type Config struct {
	// Runtime environment ("local", "staging", "production")
	AppEnv string

	// HTTP server configuration
	Port string

	// Validation rule configuration
	AllowedCurrencies []string
	TotalTolerance    float64

	// Extraction configuration
	KnownSellers []string

	// Logging configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// DefaultKnownSellers is the closed list of seller names the name extractor
// recognizes. It is a lookup against known company names, not a general
// pattern; deployments with other sellers override it via KNOWN_SELLERS.
var DefaultKnownSellers = []string{
	"Beispielname Unternehmen",
	"Softwareunternehmen",
	"Freiburg Gesundheitszentrum",
	"Unternehmensunternehmen",
}

func Load() (*Config, error) {
	config := &Config{
		AppEnv:            getEnv("APP_ENV", "local"),
		Port:              getEnv("PORT", "8080"),
		AllowedCurrencies: getEnvList("ALLOWED_CURRENCIES", []string{"EUR"}),
		KnownSellers:      getEnvList("KNOWN_SELLERS", DefaultKnownSellers),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:     getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:         getEnv("LOG_OUTPUT", "stderr"),
	}

	tolerance, err := getEnvFloat("TOTAL_TOLERANCE", 0.01)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	config.TotalTolerance = tolerance

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if len(c.AllowedCurrencies) == 0 {
		return fmt.Errorf("ALLOWED_CURRENCIES must not be empty")
	}
	if c.TotalTolerance < 0 {
		return fmt.Errorf("TOTAL_TOLERANCE must not be negative")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList reads a comma-separated environment variable, trimming blanks.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, value)
	}
	return parsed, nil
}
