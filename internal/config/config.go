// Package config handles resolving configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration. All fields have working defaults;
// a missing config file yields [Default] unchanged.
type Config struct {
	// ListenAddress is the host:port the web server binds to.
	ListenAddress string `yaml:"listen_address"`
	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `yaml:"log_level"`
	// IndexFile is the path of the static page served at /.
	IndexFile string `yaml:"index_file"`
	// DevMode enables request logging and disables the production middleware.
	DevMode bool `yaml:"dev_mode"`
}

// Default returns a version of the config with all default values populated.
func Default() Config {
	return Config{
		ListenAddress: "localhost:9990",
		LogLevel:      "INFO",
		IndexFile:     "public/index.html",
		DevMode:       false,
	}
}

// Load loads a YAML configuration file from a path, merges it with defaults,
// and validates it for completeness. A file that does not exist is not an
// error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	bytes, err := os.ReadFile(path) //nolint:gosec // allow the config file to be loaded from anywhere
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshaling over the defaults keeps any field the file omits.
	if err = yaml.Unmarshal(bytes, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	if err = validate(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.ListenAddress == "" {
		return errors.New("listen_address must not be empty")
	}
	if cfg.IndexFile == "" {
		return errors.New("index_file must not be empty")
	}
	switch cfg.LogLevel {
	case "DEBUG", "INFO", "WARN", "ERROR":
		return nil
	default:
		return fmt.Errorf("log_level must be one of DEBUG, INFO, WARN, ERROR; got %q", cfg.LogLevel)
	}
}
