package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Completion (OpenAI). An empty key is a valid state: replies come from the fallback table.
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIBaseURL     string // Optional, for OpenAI-compatible gateways
	CompletionTimeout time.Duration

	// Fallback responses
	FallbackLocale string // "en" for the base table, or an overlay name such as "hinglish"
	ResponsesFile  string // Optional YAML file replacing the built-in tables

	// Observability
	MetricsEnabled bool
	LogLevel       string // debug, info, warn, error

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Rural Career Guide"
	SiteTagline string // env: SITE_TAGLINE, default: "Career guidance for rural communities"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:               getEnv("ENV", "development"),
		ServerAddr:        getEnv("SERVER_ADDR", ":5000"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:5000"),
		CORSOrigins:       getEnv("CORS_ORIGINS", ""),
		OpenAIAPIKey:      strings.TrimSpace(getEnv("OPENAI_API_KEY", "")),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		CompletionTimeout: getDuration("COMPLETION_TIMEOUT", 15*time.Second),
		FallbackLocale:    strings.ToLower(getEnv("FALLBACK_LOCALE", "en")),
		ResponsesFile:     getEnv("RESPONSES_FILE", ""),
		MetricsEnabled:    getBool("METRICS_ENABLED", true),
		LogLevel:          getEnv("LOG_LEVEL", "info"),

		SiteTitle:   getEnv("SITE_TITLE", "Rural Career Guide"),
		SiteTagline: getEnv("SITE_TAGLINE", "Career guidance for rural communities"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasOpenAIKey reports whether a completion credential is configured.
func (c *Config) HasOpenAIKey() bool {
	return c.OpenAIAPIKey != ""
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
