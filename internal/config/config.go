package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Audit    AuditConfig    `yaml:"audit"`
	Notify   NotifyConfig   `yaml:"notify"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	QueryTimeout    time.Duration `yaml:"query_timeout"      env:"DATABASE_QUERY_TIMEOUT"      env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Retention policy names. The policy is resolved at deployment time;
// the core never hardcodes a retention period.
const (
	RetentionForever    = "forever"
	RetentionSevenYears = "7y"
	RetentionTwoYears   = "2y"
)

// AuditConfig holds audit log settings.
type AuditConfig struct {
	Retention string `yaml:"retention" env:"AUDIT_RETENTION" env-default:"forever"`
}

// RetentionDuration returns the configured retention window and whether
// entries expire at all.
func (c AuditConfig) RetentionDuration() (time.Duration, bool) {
	switch c.Retention {
	case RetentionSevenYears:
		return 7 * 365 * 24 * time.Hour, true
	case RetentionTwoYears:
		return 2 * 365 * 24 * time.Hour, true
	}
	return 0, false
}

// NotifyConfig holds notification dispatcher settings.
type NotifyConfig struct {
	BufferSize   int           `yaml:"buffer_size"   env:"NOTIFY_BUFFER_SIZE"   env-default:"256"`
	DrainTimeout time.Duration `yaml:"drain_timeout" env:"NOTIFY_DRAIN_TIMEOUT" env-default:"5s"`
}
