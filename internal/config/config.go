package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	CMS         CMSConfig         `mapstructure:"cms"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Personalize PersonalizeConfig `mapstructure:"personalize"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// CMSConfig holds the delivery API configuration. APIKey and AccessToken are
// both required for remote access; when either is empty the portal runs in
// fallback-only mode.
type CMSConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	APIKey               string `mapstructure:"api_key"`
	AccessToken          string `mapstructure:"access_token"`
	Environment          string `mapstructure:"environment"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`

	// Live preview
	PreviewEnabled bool   `mapstructure:"preview_enabled"`
	PreviewToken   string `mapstructure:"preview_token"`
	PreviewHost    string `mapstructure:"preview_host"`
}

// RedisConfig holds the optional content cache connection details. An empty
// host disables caching.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	TTL      int    `mapstructure:"ttl"` // seconds
}

// DatabaseConfig holds the optional snapshot store configuration. An empty
// host disables snapshots.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// PersonalizeConfig holds the personalization SDK boundary configuration
type PersonalizeConfig struct {
	ProjectUID string `mapstructure:"project_uid"`
}

// HasCredentials reports whether remote access is configured at all.
func (c CMSConfig) HasCredentials() bool {
	return c.APIKey != "" && c.AccessToken != ""
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// Missing config.yaml is fine: env vars plus defaults are enough to
		// run in fallback-only mode.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "localhost")

	viper.SetDefault("cms.base_url", "https://cdn.contentstack.io")
	viper.SetDefault("cms.api_key", "")
	viper.SetDefault("cms.access_token", "")
	viper.SetDefault("cms.environment", "production")
	viper.SetDefault("cms.timeout", 30)
	viper.SetDefault("cms.max_retries", 3)
	viper.SetDefault("cms.max_requests_per_second", 10)
	viper.SetDefault("cms.preview_enabled", false)
	viper.SetDefault("cms.preview_token", "")
	viper.SetDefault("cms.preview_host", "rest-preview.contentstack.com")

	viper.SetDefault("redis.host", "")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.database", 0)
	viper.SetDefault("redis.ttl", 300)

	viper.SetDefault("database.host", "")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "portal")
	viper.SetDefault("database.user", "portal_user")
	viper.SetDefault("database.password", "portal_pass")

	viper.SetDefault("personalize.project_uid", "")
}
