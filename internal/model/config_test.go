package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Store != StoreFile {
		t.Errorf("Store = %q, want %q", cfg.Store, StoreFile)
	}

	if cfg.Tick != 500*time.Millisecond {
		t.Errorf("Tick = %s, want 500ms", cfg.Tick)
	}

	if cfg.IdleTimeout != time.Minute {
		t.Errorf("IdleTimeout = %s, want 1m0s", cfg.IdleTimeout)
	}

	if cfg.RefillAmount != 50 {
		t.Errorf("RefillAmount = %d, want 50", cfg.RefillAmount)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "unknown store", mutate: func(c *Config) { c.Store = "redis" }, wantErr: "store"},
		{name: "zero tick", mutate: func(c *Config) { c.Tick = 0 }, wantErr: "tick"},
		{name: "zero idle timeout", mutate: func(c *Config) { c.IdleTimeout = 0 }, wantErr: "idle_timeout"},
		{name: "negative rotation", mutate: func(c *Config) { c.RotationDuration = -time.Second }, wantErr: "rotation_duration"},
		{name: "negative refill", mutate: func(c *Config) { c.RefillAmount = -1 }, wantErr: "refill_amount"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}

			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := "store: bolt\ntick: 250ms\nidle_timeout: 30s\nrefill_amount: 10\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Store != StoreBolt {
		t.Errorf("Store = %q, want bolt", cfg.Store)
	}

	if cfg.Tick != 250*time.Millisecond {
		t.Errorf("Tick = %s, want 250ms", cfg.Tick)
	}

	if cfg.IdleTimeout != 30*time.Second {
		t.Errorf("IdleTimeout = %s, want 30s", cfg.IdleTimeout)
	}

	if cfg.RefillAmount != 10 {
		t.Errorf("RefillAmount = %d, want 10", cfg.RefillAmount)
	}

	// Untouched keys keep their defaults.
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tick: [not a duration"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() error = nil, want parse error")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	original := DefaultConfig()
	original.Store = StoreSQLite
	original.MetricsAddr = ":9109"

	if err := SaveConfig(path, original); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if loaded != original {
		t.Errorf("LoadConfig() = %+v, want %+v", loaded, original)
	}
}
