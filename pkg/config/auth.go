package config

import (
	"fmt"
	"strings"
)

// AuthConfig holds the static API-key allow-list. Keys are never hard-coded;
// they arrive through config.yaml, .env or CATALOG_AUTH_KEYS.
type AuthConfig struct {
	Keys []string `koanf:"keys"`
}

// String returns a string representation of the auth configuration with the
// key values masked.
func (c *AuthConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Auth ---\n")
	b.WriteString(fmt.Sprintf("  keys: %d configured\n", len(c.Keys)))
	return b.String()
}

func (c *AuthConfig) Validate() error {
	if len(c.Keys) == 0 {
		return fmt.Errorf("no API keys configured")
	}
	for _, k := range c.Keys {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("empty API key configured")
		}
	}
	return nil
}
