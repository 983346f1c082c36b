package config

import "time"

// Config is the root configuration for ocpicheck. All sections have
// working defaults; an empty file yields a usable configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Validation ValidationConfig `yaml:"validation"`
	History    HistoryConfig    `yaml:"history"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Watch      WatchConfig      `yaml:"watch"`
}

// ServerConfig configures the HTTP validation API.
type ServerConfig struct {
	// ListenAddress is the host:port the API binds to.
	ListenAddress string `yaml:"listen_address"`

	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`

	// MaxBodyBytes caps the size of accepted payloads.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// ShutdownTimeout bounds graceful shutdown on SIGTERM.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ValidationConfig tunes the validation engine.
type ValidationConfig struct {
	// Profiles overrides the top-level required-field set per object
	// type, keyed by object type name (location, token, session, cdr,
	// tariff). Types without an entry use the built-in defaults.
	Profiles map[string]ProfileConfig `yaml:"profiles"`
}

// ProfileConfig is one object type's required-field override.
type ProfileConfig struct {
	Required []string `yaml:"required"`
}

// HistoryConfig configures the validation history store.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`

	// Driver selects the store backend: "sqlite" or "memory".
	Driver string `yaml:"driver"`

	// Path is the SQLite database file. Ignored by the memory driver.
	Path string `yaml:"path"`

	// RetentionDays is how long records are kept before pruning.
	// Zero disables pruning.
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is a cron expression for the retention job.
	PruneSchedule string `yaml:"prune_schedule"`
}

// TelemetryConfig configures logging and metrics.
type TelemetryConfig struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is "json" or "text".
	LogFormat string `yaml:"log_format"`

	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool `yaml:"metrics_enabled"`
}

// WatchConfig configures the directory watcher.
type WatchConfig struct {
	// Debounce is how long to wait after the last write event before
	// revalidating a file.
	Debounce time.Duration `yaml:"debounce"`

	// Extensions lists the file extensions considered payloads.
	Extensions []string `yaml:"extensions"`
}
