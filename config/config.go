package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Data      DataConfig      `mapstructure:"data"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DataConfig holds the catalog artifact locations
type DataConfig struct {
	PrimaryPath  string `mapstructure:"primary_path"`
	FallbackPath string `mapstructure:"fallback_path"`
	ImagesDir    string `mapstructure:"images_dir"`
}

// AuthConfig holds API authentication configuration. An empty key outside
// production disables the check entirely.
type AuthConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	PerIP float64 `mapstructure:"per_ip"` // requests per second
	Burst int     `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/wattshop/")

	// Environment variable settings: nested keys map to WATTSHOP_SECTION_KEY
	v.SetEnvPrefix("WATTSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Data defaults
	v.SetDefault("data.primary_path", "data/products-enhanced.json")
	v.SetDefault("data.fallback_path", "data/products.json")
	v.SetDefault("data.images_dir", "data/images")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 10.0)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Server.Environment {
	case "development", "test", "production":
	default:
		return fmt.Errorf("environment must be development, test or production, got: %s", config.Server.Environment)
	}

	if config.Server.Environment == "production" && config.Auth.APIKey == "" {
		return fmt.Errorf("API key is required in production (set WATTSHOP_AUTH_API_KEY)")
	}

	if config.Data.PrimaryPath == "" {
		return fmt.Errorf("primary data path must not be empty")
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit per_ip must be positive, got: %v", config.RateLimit.PerIP)
	}
	if config.RateLimit.Burst <= 0 {
		return fmt.Errorf("ratelimit burst must be positive, got: %d", config.RateLimit.Burst)
	}

	return nil
}
