package config

import (
	"fmt"
	"os"

	"degrees/backend/internal/constants"
	apperrors "degrees/backend/pkg/errors"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Dataset
	DataDir    string
	DataSource string // csv or neo4j

	// Search
	DefaultDiscipline string
	SearchTimeoutMS   int

	// Neo4j
	Neo4jURI        string
	Neo4jUser       string
	Neo4jPassword   string
	ImportBatchSize int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		DataDir:           getEnv("DATA_DIR", constants.DefaultDataDir),
		DataSource:        getEnv("DATA_SOURCE", constants.DataSourceCSV),
		DefaultDiscipline: getEnv("DEFAULT_DISCIPLINE", constants.DisciplineBreadth),
		SearchTimeoutMS:   getEnvInt("SEARCH_TIMEOUT_MS", 0),
		Neo4jURI:          getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:         getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:     getEnv("NEO4J_PASSWORD", ""),
		ImportBatchSize:   getEnvInt("IMPORT_BATCH_SIZE", constants.DefaultImportBatchSize),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	switch c.DataSource {
	case constants.DataSourceCSV:
		if c.DataDir == "" {
			return apperrors.NewConfigValidationFailed("DATA_DIR", "is required for the csv data source")
		}
	case constants.DataSourceNeo4j:
		if c.Neo4jURI == "" {
			return apperrors.NewConfigValidationFailed("NEO4J_URI", "is required for the neo4j data source")
		}
		if c.Neo4jUser == "" {
			return apperrors.NewConfigValidationFailed("NEO4J_USER", "is required for the neo4j data source")
		}
		if c.Neo4jPassword == "" {
			return apperrors.NewConfigValidationFailed("NEO4J_PASSWORD", "is required for the neo4j data source")
		}
	default:
		return apperrors.NewConfigValidationFailed("DATA_SOURCE",
			fmt.Sprintf("must be %q or %q, got %q", constants.DataSourceCSV, constants.DataSourceNeo4j, c.DataSource))
	}

	if c.DefaultDiscipline != constants.DisciplineBreadth && c.DefaultDiscipline != constants.DisciplineDepth {
		return apperrors.NewConfigValidationFailed("DEFAULT_DISCIPLINE",
			fmt.Sprintf("must be %q or %q", constants.DisciplineBreadth, constants.DisciplineDepth))
	}
	if c.SearchTimeoutMS < 0 {
		return apperrors.NewConfigValidationFailed("SEARCH_TIMEOUT_MS", "cannot be negative")
	}
	if c.ImportBatchSize < 1 {
		return apperrors.NewConfigValidationFailed("IMPORT_BATCH_SIZE", "must be at least 1")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesNeo4j returns true when the graph is read from Neo4j instead of CSV files
func (c *Config) UsesNeo4j() bool {
	return c.DataSource == constants.DataSourceNeo4j
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
