package config

import (
	"fmt"
	"strings"
)

// APIConfig holds catalog API behavior settings.
type APIConfig struct {
	Environment string `koanf:"environment"`
	MaxPageSize int    `koanf:"maxPageSize"`
	Seed        bool   `koanf:"seed"`
}

// String returns a string representation of the API configuration.
func (c *APIConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- API ---\n")
	b.WriteString(fmt.Sprintf("  environment: %s\n", c.Environment))
	b.WriteString(fmt.Sprintf("  maxPageSize: %d\n", c.MaxPageSize))
	b.WriteString(fmt.Sprintf("  seed: %t\n", c.Seed))
	return b.String()
}

func (c *APIConfig) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is not configured")
	}
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("invalid max page size: %d", c.MaxPageSize)
	}
	return nil
}
