// Package config provides configuration loading for jira-mcp.
//
// Configuration is loaded from an optional YAML file, then overridden by
// environment variables. Invalid values fail at load time so the server
// never starts in a broken state.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds the complete jira-mcp configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Jira    JiraConfig    `koanf:"jira"`
	Fields  FieldsConfig  `koanf:"fields"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig identifies the MCP server implementation.
type ServerConfig struct {
	Name    string `koanf:"name"`
	Version string `koanf:"version"`
}

// JiraConfig holds backend connection settings.
type JiraConfig struct {
	// BaseURL is the Jira instance root, e.g. "https://example.atlassian.net".
	BaseURL string `koanf:"base_url"`

	// Email and APIToken are the basic-auth credentials.
	Email    string `koanf:"email"`
	APIToken Secret `koanf:"api_token"`

	// Timeout bounds a single backend request.
	Timeout time.Duration `koanf:"timeout"`

	// MaxRetries bounds retry attempts for transient backend failures.
	MaxRetries int `koanf:"max_retries"`

	// RequestsPerSecond is the client-side rate limit.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
}

// FieldsConfig holds field resolution settings.
type FieldsConfig struct {
	// EnableDynamic turns on runtime custom-field discovery.
	EnableDynamic bool `koanf:"enable_dynamic"`

	// CacheTTL is how long discovered fields stay cached.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// CacheMaxSize bounds the number of cached entity types.
	CacheMaxSize int `koanf:"cache_max_size"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:    "jira-mcp",
			Version: "2.0.0",
		},
		Jira: JiraConfig{
			Timeout:           30 * time.Second,
			MaxRetries:        3,
			RequestsPerSecond: 10,
		},
		Fields: FieldsConfig{
			EnableDynamic: true,
			CacheTTL:      time.Hour,
			CacheMaxSize:  50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return errors.New("server name is required")
	}

	if c.Jira.BaseURL == "" {
		return errors.New("jira base URL is required")
	}
	u, err := url.Parse(c.Jira.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid jira base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("jira base URL must be http or https, got %q", c.Jira.BaseURL)
	}

	if c.Jira.Timeout <= 0 {
		return errors.New("jira timeout must be positive")
	}
	if c.Jira.MaxRetries < 0 {
		return errors.New("jira max retries cannot be negative")
	}

	if c.Fields.CacheTTL <= 0 {
		return fmt.Errorf("fields cache TTL must be positive, got %s", c.Fields.CacheTTL)
	}
	if c.Fields.CacheMaxSize <= 0 {
		return fmt.Errorf("fields cache max size must be positive, got %d", c.Fields.CacheMaxSize)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (debug, info, warn, error)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q (json, console)", c.Logging.Format)
	}

	return nil
}
