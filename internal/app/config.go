package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"shakecalc/internal/domain"
	"shakecalc/internal/motion"
	"shakecalc/internal/store"
)

// ConfigFileName is the config file looked up in the home directory.
const ConfigFileName = "config.yaml"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Motion sources.
const (
	SourceNone = "none"
	SourceFile = "file"
	SourceHTTP = "http"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string `yaml:"-"` // config directory, e.g. $HOME/.shakecalc

	Store   StoreConfig   `yaml:"store"`
	Shake   ShakeConfig   `yaml:"shake"`
	Haptic  HapticConfig  `yaml:"haptic"`
	Motion  MotionConfig  `yaml:"motion"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig selects where the last result is persisted.
type StoreConfig struct {
	Backend string `yaml:"backend"` // file, sqlite, memory
	Path    string `yaml:"path"`    // default depends on backend

	// Passphrase seals the file backend. Never written to disk.
	Passphrase string `yaml:"-"`
}

// ShakeConfig tunes shake detection.
type ShakeConfig struct {
	Threshold float64 `yaml:"threshold"`
	Gravity   float64 `yaml:"gravity"`
}

// HapticConfig toggles the terminal bell.
type HapticConfig struct {
	Enabled bool `yaml:"enabled"`
}

// MotionConfig selects the accelerometer feed.
type MotionConfig struct {
	Source string `yaml:"source"` // none, file, http
	File   string `yaml:"file"`
	Follow bool   `yaml:"follow"`
	Listen string `yaml:"listen"`
}

// MetricsConfig exposes Prometheus metrics on Motion.Listen.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // used when the terminal is owned by the UI
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig(home string) *Config {
	return &Config{
		Home:    home,
		Store:   StoreConfig{Backend: BackendFile},
		Shake:   ShakeConfig{Threshold: motion.DefaultThreshold, Gravity: domain.StandardGravity},
		Haptic:  HapticConfig{Enabled: true},
		Motion:  MotionConfig{Source: SourceNone, Follow: true, Listen: "127.0.0.1:8087"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads <home>/config.yaml, falling back to defaults when it does
// not exist, then applies environment overrides.
func LoadConfig(home string) (*Config, error) {
	cfg := DefaultConfig(home)

	data, err := os.ReadFile(filepath.Join(home, ConfigFileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to <home>/config.yaml.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.Home, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(c.Home, ConfigFileName), data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SHAKECALC_STORE"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv("SHAKECALC_PASSPHRASE"); v != "" {
		c.Store.Passphrase = v
	}
	if v := os.Getenv("SHAKECALC_LISTEN"); v != "" {
		c.Motion.Listen = v
	}
	if v := os.Getenv("SHAKECALC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for values the wiring cannot use.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("%w: unknown store backend %q", ErrInvalidConfig, c.Store.Backend)
	}
	if c.Store.Passphrase != "" && c.Store.Backend != BackendFile {
		return fmt.Errorf("%w: a passphrase needs the %q store backend", ErrInvalidConfig, BackendFile)
	}
	if c.Shake.Threshold <= 0 {
		return fmt.Errorf("%w: shake threshold must be positive", ErrInvalidConfig)
	}
	switch c.Motion.Source {
	case SourceNone, "":
	case SourceFile:
		if c.Motion.File == "" {
			return fmt.Errorf("%w: motion source %q needs motion.file", ErrInvalidConfig, SourceFile)
		}
	case SourceHTTP:
		if c.Motion.Listen == "" {
			return fmt.Errorf("%w: motion source %q needs motion.listen", ErrInvalidConfig, SourceHTTP)
		}
	default:
		return fmt.Errorf("%w: unknown motion source %q", ErrInvalidConfig, c.Motion.Source)
	}
	if c.Metrics.Enabled && c.Motion.Listen == "" {
		return fmt.Errorf("%w: metrics need motion.listen", ErrInvalidConfig)
	}
	return nil
}

// StorePath returns the configured store location or the backend default.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	switch c.Store.Backend {
	case BackendSQLite:
		return filepath.Join(c.Home, store.SQLiteFileName)
	case BackendFile:
		if c.Store.Passphrase != "" {
			return filepath.Join(c.Home, store.SealedFileName)
		}
		return filepath.Join(c.Home, store.PrefsFileName)
	}
	return ""
}

// LogFile returns the configured log file or <home>/shakecalc.log.
func (c *Config) LogFile() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return filepath.Join(c.Home, "shakecalc.log")
}

// Listening reports whether the HTTP listener is needed.
func (c *Config) Listening() bool {
	return c.Motion.Source == SourceHTTP || c.Metrics.Enabled
}
