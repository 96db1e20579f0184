package configuration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig represents the complete application configuration.
type AppConfig struct {
	// Logger: logger component configuration
	Logger LoggerConfig `mapstructure:"logger"`
	// Server: HTTP server configuration
	Server ServerConfig `mapstructure:"server"`
	// Engine: estimation engine configuration
	Engine EngineConfig `mapstructure:"engine"`
	// Metrics: Prometheus endpoint configuration
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LoggerConfig defines logging settings.
type LoggerConfig struct {
	// Level: one of debug, info, warn, warning, error.
	// Value is case-insensitive but checked in lowercase.
	Level string `mapstructure:"level"`
	// File: optional path of a rotating log file. Logs go to stdout when empty.
	File string `mapstructure:"file"`
	// MaxSize: maximal log file size in megabytes before rotation (default 100).
	MaxSize int `mapstructure:"max_size"`
	// MaxBackups: number of rotated files to keep (default 5).
	MaxBackups int `mapstructure:"max_backups"`
}

// ServerConfig contains HTTP server parameters.
type ServerConfig struct {
	// Address: address and port where the server will listen (e.g., ":8080").
	Address string `mapstructure:"address"`
	// ReadTimeout: request read timeout (default 3s).
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout: response write timeout (default 3s).
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// EngineConfig defines estimation parameters.
type EngineConfig struct {
	// Seed: seed of the forest random source. Zero seeds from runtime entropy.
	Seed uint64 `mapstructure:"seed"`
	// Rules: optional path to the YAML file with insight rules.
	Rules string `mapstructure:"rules"`
}

// MetricsConfig defines the Prometheus endpoint.
type MetricsConfig struct {
	// Enabled: expose metrics on the HTTP server.
	Enabled bool `mapstructure:"enabled"`
	// Path: route of the metrics endpoint (default /metrics).
	Path string `mapstructure:"path"`
}

// Validate checks the correctness of the entire application configuration
// and fills defaults. Returns the first detected error.
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	if err := c.Server.Validate(); err != nil {
		return err
	}

	if err := c.Metrics.Validate(); err != nil {
		return err
	}

	return nil
}

// Validate checks the correctness of the logger configuration.
// Supported levels: debug, info, warn, warning, error (case-insensitive).
func (l *LoggerConfig) Validate() error {
	if l.Level == "" {
		return errors.New("logger.level: must be specified")
	}

	valid := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !valid[strings.ToLower(l.Level)] {
		return fmt.Errorf("logger.level: unsupported level '%s'", l.Level)
	}

	if l.MaxSize < 0 || l.MaxBackups < 0 {
		return errors.New("logger: max_size and max_backups must not be negative")
	}

	if l.MaxSize == 0 {
		l.MaxSize = 100
	}

	if l.MaxBackups == 0 {
		l.MaxBackups = 5
	}

	return nil
}

// Validate checks the correctness of the server configuration.
func (n *ServerConfig) Validate() error {
	if n.Address == "" {
		return errors.New("server.address: must be specified")
	}

	if n.ReadTimeout < 0 || n.WriteTimeout < 0 {
		return errors.New("server: timeouts must not be negative")
	}

	if n.ReadTimeout == 0 {
		n.ReadTimeout = 3 * time.Second
	}

	if n.WriteTimeout == 0 {
		n.WriteTimeout = 3 * time.Second
	}

	return nil
}

// Validate fills the default metrics path and checks it is absolute.
func (m *MetricsConfig) Validate() error {
	if m.Path == "" {
		m.Path = "/metrics"
	}

	if !strings.HasPrefix(m.Path, "/") {
		return fmt.Errorf("metrics.path: must start with '/', got '%s'", m.Path)
	}

	return nil
}

// LoadConfig loads configuration from the specified file using Viper.
// Supports YAML format. Environment variables override file values, with
// dots replaced by underscores (e.g. SERVER_ADDRESS for server.address).
//
// Returns a pointer to AppConfig or an error if:
// - the file is not found or inaccessible
// - the configuration has invalid format
// - one of the sections fails validation
func LoadConfig(configPath string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
