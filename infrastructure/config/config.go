package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Dataset configuration; empty path means the embedded dataset
	DatasetPath string

	// Randomness; 0 seeds from the wall clock, non-zero is reproducible
	RandomSeed int64

	// Layout engine tunables
	LayoutIterations       int
	LayoutRandomIterations int
	LayoutTargetSpan       float64

	// Traversal and edge randomization tunables
	TraversalChunkSize int
	MinDegree          int

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		DatasetPath: getEnv("DATASET_PATH", ""),
		RandomSeed:  int64(getEnvInt("RANDOM_SEED", 0)),

		LayoutIterations:       getEnvInt("LAYOUT_ITERATIONS", 100),
		LayoutRandomIterations: getEnvInt("LAYOUT_RANDOM_ITERATIONS", 200),
		LayoutTargetSpan:       getEnvFloat("LAYOUT_SPAN", 8.0),

		TraversalChunkSize: getEnvInt("TRAVERSAL_CHUNK_SIZE", 3),
		MinDegree:          getEnvInt("MIN_DEGREE", 3),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all configuration values are usable
func (c *Config) Validate() error {
	if c.LayoutIterations <= 0 || c.LayoutRandomIterations <= 0 {
		return fmt.Errorf("layout iteration counts must be positive")
	}
	if c.LayoutTargetSpan <= 0 {
		return fmt.Errorf("LAYOUT_SPAN must be positive")
	}
	if c.TraversalChunkSize <= 0 {
		return fmt.Errorf("TRAVERSAL_CHUNK_SIZE must be positive")
	}
	if c.MinDegree < 0 {
		return fmt.Errorf("MIN_DEGREE cannot be negative")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
