package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces jira-mcp environment variables.
const envPrefix = "JIRA_MCP_"

// configSections are the top-level config keys, used to map environment
// variable names onto nested koanf paths.
var configSections = []string{"server", "jira", "fields", "logging"}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variable overrides, in ascending precedence.
//
// Environment variables use the JIRA_MCP_ prefix with underscore-separated
// section and key:
//
//	JIRA_MCP_JIRA_BASE_URL      -> jira.base_url
//	JIRA_MCP_FIELDS_CACHE_TTL   -> fields.cache_ttl
//	JIRA_MCP_LOGGING_LEVEL      -> logging.level
//
// The returned config is validated; an invalid value fails here rather than
// at first use.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", transformEnvKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// transformEnvKey maps an environment variable name to its koanf path.
// Only the section separator becomes a dot; the rest of the key keeps its
// underscores (JIRA_MCP_FIELDS_CACHE_MAX_SIZE -> fields.cache_max_size).
func transformEnvKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	for _, section := range configSections {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}
