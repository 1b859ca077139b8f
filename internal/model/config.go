package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// StoreKind selects the persistence backend.
type StoreKind string

const (
	StoreFile   StoreKind = "file"
	StoreBolt   StoreKind = "bolt"
	StoreSQLite StoreKind = "sqlite"
)

// Config holds the application configuration
type Config struct {
	// Store is the persistence backend: file, bolt or sqlite
	Store StoreKind `yaml:"store" json:"store"`

	// DataDir overrides the directory holding state and history
	DataDir string `yaml:"data_dir,omitempty" json:"data_dir,omitempty"`

	// Tick is the input poll interval of the menu loop
	Tick time.Duration `yaml:"tick" json:"tick"`

	// IdleTimeout is how long without input before the screen blanks
	IdleTimeout time.Duration `yaml:"idle_timeout" json:"idle_timeout"`

	// RotationDuration is the real time one full feeder rotation takes
	RotationDuration time.Duration `yaml:"rotation_duration" json:"rotation_duration"`

	// RefillAmount is passed to the actuator after each feed and at startup
	RefillAmount int `yaml:"refill_amount" json:"refill_amount"`

	// MetricsAddr enables the Prometheus endpoint in headless mode when set
	MetricsAddr string `yaml:"metrics_addr,omitempty" json:"metrics_addr,omitempty"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level" json:"log_level"`

	// LogFormat is text or json
	LogFormat string `yaml:"log_format" json:"log_format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Store:            StoreFile,
		Tick:             500 * time.Millisecond,
		IdleTimeout:      60 * time.Second,
		RotationDuration: 360 * 40 * time.Millisecond,
		RefillAmount:     50,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Validate checks that the configuration can drive the controller.
func (c Config) Validate() error {
	var errs []error

	switch c.Store {
	case StoreFile, StoreBolt, StoreSQLite:
	default:
		errs = append(errs, fmt.Errorf("store: unknown backend %q", c.Store))
	}

	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick: must be positive, got %s", c.Tick))
	}

	if c.IdleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("idle_timeout: must be positive, got %s", c.IdleTimeout))
	}

	if c.RotationDuration < 0 {
		errs = append(errs, fmt.Errorf("rotation_duration: must not be negative, got %s", c.RotationDuration))
	}

	if c.RefillAmount < 0 {
		errs = append(errs, fmt.Errorf("refill_amount: must not be negative, got %d", c.RefillAmount))
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format: unknown format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// LoadConfig reads the YAML file at path on top of DefaultConfig. A missing
// file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes cfg as YAML to path, creating parent directories.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, data, 0o600)
}
