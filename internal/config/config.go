// Package config resolves the store root and user preferences from the
// environment, an optional .env file and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"recall/internal/application"
)

// Environment variables
const (
	EnvRoot   = "RECALL_DIR"
	EnvConfig = "RECALL_CONFIG"
	EnvLog    = "RECALL_LOG_LEVEL"
)

// Config holds everything an invocation needs besides its arguments
type Config struct {
	Root     string     `yaml:"root"`
	Editor   string     `yaml:"editor"`
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate checks that the store root is configured
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
	)
	if err != nil {
		return &application.ConfigError{Key: EnvRoot}
	}
	return nil
}

// Loader reads configuration. The zero value is not usable, use NewLoader.
type Loader struct {
	getenv  func(string) string
	envFile string
}

// NewLoader creates a loader reading the process environment and ./.env
func NewLoader() *Loader {
	return &Loader{
		getenv:  os.Getenv,
		envFile: ".env",
	}
}

// Load resolves the configuration. Precedence, highest first: environment
// (including variables from .env), YAML file, defaults.
func (l *Loader) Load() (*Config, error) {
	if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, &application.ConfigError{Key: l.envFile, Reason: err.Error()}
	}

	cfg := &Config{LogLevel: slog.LevelWarn}

	if path := l.configFile(); path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	if root := l.getenv(EnvRoot); root != "" {
		cfg.Root = root
	}
	if level := l.getenv(EnvLog); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, &application.ConfigError{Key: EnvLog, Reason: err.Error()}
		}
	}
	cfg.Root = expandHome(cfg.Root)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configFile returns the YAML file to read, or "" when there is none
func (l *Loader) configFile() string {
	if explicit := l.getenv(EnvConfig); explicit != "" {
		return explicit
	}
	base := l.getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	path := filepath.Join(base, "recall", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// loadYAML loads configuration from a YAML file with environment variable expansion
func loadYAML(filename string, target *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return &application.ConfigError{Key: filename, Reason: err.Error()}
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), target); err != nil {
		return &application.ConfigError{Key: filename, Reason: fmt.Sprintf("parse: %v", err)}
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
