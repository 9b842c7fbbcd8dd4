package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	// HTTP server configuration
	HTTP HTTPConfig

	// Store backend configuration
	Store StoreConfig

	// Feature flags
	Features FeatureFlags

	// Path to review standards directory (YAML files), empty = built-in defaults
	StandardsPath string

	// AI summarizer configuration
	AI AIConfig
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	Host string
	Port int
}

// StoreConfig selects and configures the contract store backend
type StoreConfig struct {
	// Backend is one of "memory", "sqlite", "mongodb"
	Backend string

	// SQLite database path (empty means in-memory database)
	SQLitePath string

	// MongoDB connection settings
	MongoURI      string
	MongoDatabase string
}

// FeatureFlags holds feature flag settings
type FeatureFlags struct {
	ChartsEnabled    bool
	AISummaryEnabled bool
	SeedDemoData     bool
}

// AIConfig holds settings for the optional review summarizer
type AIConfig struct {
	APIKey string
	Model  string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{
			Host: getEnvString("COMPLYBOARD_HTTP_HOST", "0.0.0.0"),
			Port: getEnvInt("COMPLYBOARD_HTTP_PORT", 8050),
		},
		Store: StoreConfig{
			Backend:       getEnvString("COMPLYBOARD_STORE_BACKEND", "memory"),
			SQLitePath:    getEnvString("COMPLYBOARD_SQLITE_PATH", "./data/complyboard.db"),
			MongoURI:      getEnvString("COMPLYBOARD_MONGO_URI", "mongodb://localhost:27017"),
			MongoDatabase: getEnvString("COMPLYBOARD_MONGO_DATABASE", "complyboard"),
		},
		Features: FeatureFlags{
			ChartsEnabled:    getEnvBool("COMPLYBOARD_FEATURE_CHARTS", true),
			AISummaryEnabled: getEnvBool("COMPLYBOARD_FEATURE_AI_SUMMARY", false),
			SeedDemoData:     getEnvBool("COMPLYBOARD_SEED_DEMO_DATA", true),
		},
		StandardsPath: getEnvString("COMPLYBOARD_STANDARDS_PATH", ""),
		AI: AIConfig{
			APIKey: getEnvString("OPENAI_API_KEY", ""),
			Model:  getEnvString("COMPLYBOARD_AI_MODEL", "gpt-4o-mini"),
		},
	}

	switch cfg.Store.Backend {
	case "memory", "sqlite", "mongodb":
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}

	// AI summaries require an API key
	cfg.Features.AISummaryEnabled = cfg.Features.AISummaryEnabled && cfg.AI.APIKey != ""

	return cfg, nil
}

// GetAddress returns the HTTP server address
func (c *Config) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

// Helper functions for environment variables
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
