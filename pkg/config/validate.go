package config

import (
	"fmt"
	"net"

	"github.com/robfig/cron/v3"
)

var validObjectTypes = map[string]bool{
	"location": true,
	"token":    true,
	"session":  true,
	"cdr":      true,
	"tariff":   true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for consistency. It is called after
// defaults have been applied, so empty required fields indicate an
// explicit (invalid) override.
func Validate(cfg *Config) error {
	if _, _, err := net.SplitHostPort(cfg.Server.ListenAddress); err != nil {
		return fmt.Errorf("server.listen_address %q is not a valid host:port: %w", cfg.Server.ListenAddress, err)
	}
	if cfg.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("server.max_body_bytes must not be negative, got %d", cfg.Server.MaxBodyBytes)
	}

	for name, profile := range cfg.Validation.Profiles {
		if !validObjectTypes[name] {
			return fmt.Errorf("validation.profiles: unknown object type %q", name)
		}
		if len(profile.Required) == 0 {
			return fmt.Errorf("validation.profiles.%s: required field list must not be empty", name)
		}
	}

	switch cfg.History.Driver {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("history.driver must be \"sqlite\" or \"memory\", got %q", cfg.History.Driver)
	}
	if cfg.History.RetentionDays < 0 {
		return fmt.Errorf("history.retention_days must not be negative, got %d", cfg.History.RetentionDays)
	}
	if cfg.History.PruneSchedule != "" {
		if _, err := cron.ParseStandard(cfg.History.PruneSchedule); err != nil {
			return fmt.Errorf("history.prune_schedule %q is not a valid cron expression: %w", cfg.History.PruneSchedule, err)
		}
	}

	if !validLogLevels[cfg.Telemetry.LogLevel] {
		return fmt.Errorf("telemetry.log_level must be one of debug, info, warn, error; got %q", cfg.Telemetry.LogLevel)
	}
	switch cfg.Telemetry.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("telemetry.log_format must be \"json\" or \"text\", got %q", cfg.Telemetry.LogFormat)
	}

	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %v", cfg.Watch.Debounce)
	}

	return nil
}
