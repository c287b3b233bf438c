package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Recipe/nutrition collaborator
	RecipeAPIURL string
	RecipeAPIKey string

	// Photo-search collaborator
	PhotoAPIURL string
	PhotoAPIKey string

	// Image-recognition collaborator
	RecognitionAPIURL string
	RecognitionToken  string

	// Text-generation collaborator
	OpenAIKey   string
	OpenAIModel string
}

// Load builds a Config from environment variables, falling back to Docker
// secret files for sensitive values. In development a .env file is honored.
func Load() (*Config, error) {
	if !IsProduction() {
		_ = godotenv.Load()
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     envOrSecret("DB_USER", "db_user"),
		DBPassword: envOrSecret("DB_PASSWORD", "db_password"),
		DBName:     getEnv("DB_NAME", "cravefit"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: envOrSecret("REDIS_PASSWORD", "redis_password"),
		RedisURL:      os.Getenv("REDIS_URL"),

		JWTSecret: envOrSecret("JWT_SECRET", "jwt_secret"),

		RecipeAPIURL: getEnv("RECIPE_API_URL", "https://api.spoonacular.com"),
		RecipeAPIKey: envOrSecret("RECIPE_API_KEY", "recipe_api_key"),

		PhotoAPIURL: getEnv("PHOTO_API_URL", "https://api.pexels.com/v1"),
		PhotoAPIKey: envOrSecret("PHOTO_API_KEY", "photo_api_key"),

		RecognitionAPIURL: getEnv("RECOGNITION_API_URL", "https://api.replicate.com/v1"),
		RecognitionToken:  envOrSecret("RECOGNITION_TOKEN", "recognition_token"),

		OpenAIKey:   envOrSecret("OPENAI_API_KEY", "openai_api_key"),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.RedisDB = db
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envOrSecret reads an environment variable, falling back to a Docker secret
// file of the given name under SECRETS_DIR (default /run/secrets).
func envOrSecret(envKey, secretName string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return readSecret(secretName)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
