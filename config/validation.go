package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the values a running server cannot function without
// are present. Collaborator credentials are deliberately not required here;
// a missing key degrades the feature it powers instead of blocking startup.
func Validate(cfg *Config) error {
	var errors []string

	required := map[string]string{
		"SERVER_PORT": cfg.ServerPort,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_NAME":     cfg.DBName,
	}
	for field, value := range required {
		if value == "" {
			errors = append(errors, fmt.Sprintf("required configuration %s is not set", field))
		}
	}

	if !IsTest() {
		if cfg.DBUser == "" {
			errors = append(errors, "DB_USER or db_user secret is required")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD or db_password secret is required")
		}
		if cfg.JWTSecret == "" {
			errors = append(errors, "JWT_SECRET or jwt_secret secret is required")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
