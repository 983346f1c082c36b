package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_EmptyFileUsesDefaults(t *testing.T) {
	path := writeConfigFile(t, "")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("ListenAddress = %q, want %q", cfg.Server.ListenAddress, DefaultListenAddress)
	}
	if cfg.History.Driver != DefaultHistoryDriver {
		t.Errorf("History.Driver = %q, want %q", cfg.History.Driver, DefaultHistoryDriver)
	}
	if cfg.Telemetry.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.Telemetry.LogLevel, DefaultLogLevel)
	}
	if cfg.Watch.Debounce != DefaultWatchDebounce {
		t.Errorf("Watch.Debounce = %v, want %v", cfg.Watch.Debounce, DefaultWatchDebounce)
	}
}

func TestLoadConfig_Values(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen_address: "0.0.0.0:9000"
  read_timeout: 5s
validation:
  profiles:
    location:
      required: [id, coordinates, last_updated]
history:
  enabled: true
  driver: memory
  retention_days: 7
telemetry:
  log_level: debug
  log_format: text
  metrics_enabled: true
watch:
  debounce: 250ms
  extensions: [".json", ".ocpi"]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9000" {
		t.Errorf("ListenAddress = %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	profile, ok := cfg.Validation.Profiles["location"]
	if !ok {
		t.Fatal("expected location profile")
	}
	if len(profile.Required) != 3 || profile.Required[0] != "id" {
		t.Errorf("location profile = %v", profile.Required)
	}
	if cfg.History.Driver != "memory" || cfg.History.RetentionDays != 7 {
		t.Errorf("history = %+v", cfg.History)
	}
	if !cfg.Telemetry.MetricsEnabled || cfg.Telemetry.LogFormat != "text" {
		t.Errorf("telemetry = %+v", cfg.Telemetry)
	}
	if len(cfg.Watch.Extensions) != 2 {
		t.Errorf("extensions = %v", cfg.Watch.Extensions)
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad listen address", content: "server:\n  listen_address: \"no-port\"\n"},
		{name: "unknown profile type", content: "validation:\n  profiles:\n    invoice:\n      required: [id]\n"},
		{name: "empty profile", content: "validation:\n  profiles:\n    token:\n      required: []\n"},
		{name: "bad driver", content: "history:\n  driver: postgres\n"},
		{name: "bad cron", content: "history:\n  prune_schedule: \"every day\"\n"},
		{name: "bad log level", content: "telemetry:\n  log_level: verbose\n"},
		{name: "bad log format", content: "telemetry:\n  log_format: xml\n"},
		{name: "malformed yaml", content: "server: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, "server:\n  listen_address: \"127.0.0.1:8180\"\n")

	t.Setenv("OCPICHECK_SERVER_LISTEN_ADDRESS", "0.0.0.0:8888")
	t.Setenv("OCPICHECK_HISTORY_ENABLED", "true")
	t.Setenv("OCPICHECK_HISTORY_RETENTION_DAYS", "90")
	t.Setenv("OCPICHECK_TELEMETRY_LOG_LEVEL", "DEBUG")
	t.Setenv("OCPICHECK_WATCH_DEBOUNCE", "2s")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:8888" {
		t.Errorf("ListenAddress = %q, want env override", cfg.Server.ListenAddress)
	}
	if !cfg.History.Enabled || cfg.History.RetentionDays != 90 {
		t.Errorf("history = %+v, want env overrides", cfg.History)
	}
	if cfg.Telemetry.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.Telemetry.LogLevel)
	}
	if cfg.Watch.Debounce != 2*time.Second {
		t.Errorf("Debounce = %v, want 2s", cfg.Watch.Debounce)
	}
}

func TestSetAndGetConfig(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	cfg := DefaultConfig()
	cfg.Server.ListenAddress = "127.0.0.1:9999"
	SetConfig(cfg)

	if got := GetConfig(); got == nil || got.Server.ListenAddress != "127.0.0.1:9999" {
		t.Errorf("GetConfig() = %+v, want the value just set", got)
	}
}
