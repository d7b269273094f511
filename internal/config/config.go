package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	OpenAIAPIKey        string
	ChatModel           string
	EmbeddingModel      string
	EmbeddingDimensions int
	DBPath              string
	QdrantURL           string
	QdrantCollection    string
	APIPort             string
	APIKey              string // optional; empty disables the auth check
	AllowedOrigins      []string
	LogLevel            slog.Level
	LogFormat           string
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first if present;
// environment variables already set take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		ChatModel:        getEnv("CHAT_MODEL", "gpt-4o"),
		EmbeddingModel:   getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		DBPath:           getEnv("DB_PATH", "./data/kbase.db"),
		QdrantURL:        getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection: getEnv("QDRANT_COLLECTION", "knowledge"),
		APIPort:          getEnv("API_PORT", "8000"),
		APIKey:           os.Getenv("API_KEY"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	// Must match the output size of the embedding model; the Qdrant
	// collection is created with this dimensionality and cannot change.
	dimsStr := getEnv("EMBEDDING_DIMENSIONS", "1536")
	dims, err := strconv.Atoi(dimsStr)
	if err != nil {
		return nil, fmt.Errorf("EMBEDDING_DIMENSIONS must be a valid integer: %w", err)
	}
	if dims <= 0 {
		return nil, fmt.Errorf("EMBEDDING_DIMENSIONS must be greater than 0")
	}
	cfg.EmbeddingDimensions = dims

	for _, origin := range strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	// Create the data directory for the SQLite file if needed.
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid LOG_LEVEL %q", raw)
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
