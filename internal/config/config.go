// Package config provides configuration loading and defaults for the
// slack-mcp server.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds network and authentication settings for the HTTP
// transport.
type ServerConfig struct {
	Port      int    `yaml:"port" envconfig:"SLACKMCP_PORT"`
	AuthToken string `yaml:"auth_token" envconfig:"SLACKMCP_AUTH_TOKEN"`
}

// SlackConfig holds the workspace credential.
type SlackConfig struct {
	// Token is the bot token (xoxb-...) used for every Web API call.
	Token  string `yaml:"token" envconfig:"SLACK_BOT_TOKEN"`
	TeamID string `yaml:"team_id" envconfig:"SLACK_TEAM_ID"`
}

// ChannelFilter holds allowlist and denylist glob patterns for channel
// filtering.
type ChannelFilter struct {
	Allowlist []string `yaml:"allowlist"`
	Denylist  []string `yaml:"denylist"`
}

// SafetyConfig groups the channel filter settings.
type SafetyConfig struct {
	Channels ChannelFilter `yaml:"channels"`
}

// AuditConfig controls audit logging behaviour.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	LogPath string `yaml:"log_path"`
}

// LoggingConfig controls structured log output.
type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"SLACKMCP_LOG_LEVEL"`
}

// Config is the top-level configuration structure for the slack-mcp server.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Slack   SlackConfig   `yaml:"slack"`
	Safety  SafetyConfig  `yaml:"safety"`
	Audit   AuditConfig   `yaml:"audit"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoadConfig reads and parses a YAML configuration file from the given path.
// On error, nil is returned for the config pointer.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a new Config populated with sensible default values.
// Each call returns a distinct instance.
//
// Defaults:
//   - Server.Port = 8080
//   - Audit.Enabled = true
//   - Audit.LogPath = "audit.log"
//   - Logging.Level = "info"
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Audit: AuditConfig{
			Enabled: true,
			LogPath: "audit.log",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ApplyEnvOverrides updates cfg in place with values from environment
// variables. Only set variables override existing config values.
//
// Recognized variables: SLACK_BOT_TOKEN, SLACK_TEAM_ID, SLACKMCP_AUTH_TOKEN,
// SLACKMCP_PORT, SLACKMCP_LOG_LEVEL.
func ApplyEnvOverrides(cfg *Config) error {
	return envconfig.Process("slackmcp", cfg)
}

// LogLevel maps the configured level string to a slog.Level. Unknown values
// fall back to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
