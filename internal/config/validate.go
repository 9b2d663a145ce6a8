package config

import (
	"fmt"
	"slices"
	"strings"
)

var validRetentions = []string{RetentionForever, RetentionSevenYears, RetentionTwoYears}

// Validate checks cross-field constraints that tags cannot express.
func (c *Config) Validate() error {
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: min_conns (%d) exceeds max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database: query_timeout must be positive")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: unknown level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log: unknown format %q", c.Log.Format)
	}

	if !slices.Contains(validRetentions, c.Audit.Retention) {
		return fmt.Errorf("audit: unknown retention %q (valid: %s)",
			c.Audit.Retention, strings.Join(validRetentions, ", "))
	}

	if c.Notify.BufferSize <= 0 {
		return fmt.Errorf("notify: buffer_size must be positive")
	}
	if c.Notify.DrainTimeout <= 0 {
		return fmt.Errorf("notify: drain_timeout must be positive")
	}

	return nil
}
