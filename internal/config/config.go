package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults used when the config file leaves a value unset
const (
	DefaultFormat  = "directory"
	DefaultLevel   = "INFO"
	DefaultLogFile = "logs/bookmark_parser.log"
)

// Config holds application configuration
type Config struct {
	// ShowBookmarkName selects the bookmark name instead of its URL in flat lists and trees
	ShowBookmarkName bool   `yaml:"show_bookmark_name"`
	Format           string `yaml:"format,omitempty"` // all, directory, bookmarks
	LogLevel         string `yaml:"log_level,omitempty"`
	LogFile          string `yaml:"log_file,omitempty"` // empty disables file logging
	DBPath           string `yaml:"db_path,omitempty"`
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	return &Config{
		ShowBookmarkName: true,
		Format:           DefaultFormat,
		LogLevel:         DefaultLevel,
		LogFile:          DefaultLogFile,
		DBPath:           getDefaultDBPath(),
	}
}

// Load reads a YAML config file on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns ~/.bookmarks/config.yaml, or an empty string without a home directory
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".bookmarks", "config.yaml")
}

// WithDBPath sets a custom database path
func (c *Config) WithDBPath(path string) *Config {
	c.DBPath = path
	return c
}

// WithLogLevel sets the log level
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}

// WithShowBookmarkName sets whether bookmark names or URLs are displayed
func (c *Config) WithShowBookmarkName(show bool) *Config {
	c.ShowBookmarkName = show
	return c
}

func getDefaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "bookmarks.db"
	}
	return filepath.Join(homeDir, ".bookmarks", "bookmarks.db")
}
