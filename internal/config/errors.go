package config

import "fmt"

// ConfigError represents structurally invalid configuration. It is fatal:
// scoring never starts with a configuration that fails validation.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// NewConfigError creates a ConfigError for the given field
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}
