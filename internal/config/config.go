package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	APIKey      string // API key for authentication

	// CatalogPath points at the authored ability catalog. Empty means use
	// the built-in default catalog.
	CatalogPath string

	// SessionCacheSize bounds the number of live unlock sessions.
	SessionCacheSize int

	// RandomSeed makes all code generation and selection reproducible when
	// non-zero. Zero means use the auto-seeded generator.
	RandomSeed uint64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		APIKey:      getEnv("API_KEY", ""),
		CatalogPath: getEnv("CATALOG_PATH", ConfigPathAbilities),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cacheSize, err := strconv.Atoi(getEnv("SESSION_CACHE_SIZE", DefaultSessionCacheSize))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_CACHE_SIZE value: %w", err)
	}
	if cacheSize < 1 {
		return nil, fmt.Errorf("SESSION_CACHE_SIZE must be at least 1, got %d", cacheSize)
	}
	cfg.SessionCacheSize = cacheSize

	seed, err := strconv.ParseUint(getEnv("RANDOM_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RANDOM_SEED value: %w", err)
	}
	cfg.RandomSeed = seed

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
