package config

import (
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable in the
// given environment before anything connects with it.
func ValidateConfig(env Environment, cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "ServerPort", Message: "server port is required"}
	}

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.SQLitePath == "" {
			return ValidationError{Field: "SQLitePath", Message: "sqlite path is required"}
		}
	case "postgres":
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
			return ValidationError{Field: "DB", Message: "postgres host, port and database name are required"}
		}
		if env == Production && (cfg.DBUser == "" || cfg.DBPassword == "") {
			return ValidationError{Field: "DB", Message: "postgres credentials are required in production"}
		}
	default:
		return ValidationError{Field: "DBDriver", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}
	}

	if env == Production {
		if cfg.CSRFSecret == "" || cfg.CSRFSecret == "csrf-dev" {
			return ValidationError{Field: "CSRFSecret", Message: "a real CSRF secret is required in production"}
		}
	}

	return nil
}
