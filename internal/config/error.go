package config

import "strings"

// ConfigError aggregates validation errors.
type ConfigError struct {
	Errors []string
}

func (e *ConfigError) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}
	parts := []string{"invalid configuration:"}
	for _, err := range e.Errors {
		parts = append(parts, "  - "+err)
	}
	return strings.Join(parts, "\n")
}

// HasErrors returns true if there are any errors.
func (e *ConfigError) HasErrors() bool {
	return len(e.Errors) > 0
}
