package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 when enabled (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if !strings.HasPrefix(d.URL, "ws://") && !strings.HasPrefix(d.URL, "wss://") {
		return fmt.Errorf("url must be a ws:// or wss:// endpoint (got %q)", d.URL)
	}
	if d.Namespace == "" {
		return fmt.Errorf("namespace must not be empty")
	}
	if d.Database == "" {
		return fmt.Errorf("name must not be empty")
	}
	if d.Access == "" {
		return fmt.Errorf("access must not be empty")
	}
	return nil
}
