// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Server ServerConfig
	Bot    BotConfig
	Fiat   FiatConfig
	Fixer  FixerConfig
	Crypto CryptoConfig
	Cache  CacheConfig
}

// ServerConfig holds HTTP gateway settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// BotConfig holds the chat-facing settings.
type BotConfig struct {
	// CommandPrefix marks explicit commands, e.g. "." for ".cur".
	CommandPrefix string `mapstructure:"command_prefix"`
	// AutoConvert answers ordinary messages that look like conversion queries.
	AutoConvert bool `mapstructure:"auto_convert"`
}

// FiatConfig holds settings for the free fiat-rate provider.
type FiatConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout_sec"`
}

// FixerConfig holds settings for the keyed fixer.io provider. The keyed
// provider is used instead of the free one whenever APIKey is set.
type FixerConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout_sec"`
}

// CryptoConfig holds settings for the crypto-rate provider.
type CryptoConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout_sec"`
}

// CacheConfig holds rate-cache settings.
type CacheConfig struct {
	TTLHours int `mapstructure:"ttl_hours"`
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Config search paths
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("./internal/config")

	viper.SetEnvPrefix("CURRENCYBOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// default values
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("bot.command_prefix", ".")
	viper.SetDefault("bot.auto_convert", false)
	viper.SetDefault("fiat.base_url", "https://api.exchangeratesapi.io")
	viper.SetDefault("fiat.timeout_sec", 5)
	viper.SetDefault("fixer.base_url", "http://data.fixer.io/api")
	viper.SetDefault("fixer.api_key", "")
	viper.SetDefault("fixer.timeout_sec", 5)
	viper.SetDefault("crypto.base_url", "https://apiv2.bitcoinaverage.com")
	viper.SetDefault("crypto.timeout_sec", 5)
	viper.SetDefault("cache.ttl_hours", 24)

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}

	if c.Bot.CommandPrefix == "" {
		errs = append(errs, fmt.Errorf("bot.command_prefix is required"))
	}

	if c.Fiat.BaseURL == "" {
		errs = append(errs, fmt.Errorf("fiat.base_url is required"))
	}
	if c.Fiat.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("fiat.timeout_sec must be positive, got %d", c.Fiat.Timeout))
	}

	if c.Fixer.APIKey != "" && c.Fixer.BaseURL == "" {
		errs = append(errs, fmt.Errorf("fixer.base_url is required when fixer.api_key is set"))
	}
	if c.Fixer.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("fixer.timeout_sec must be positive, got %d", c.Fixer.Timeout))
	}

	if c.Crypto.BaseURL == "" {
		errs = append(errs, fmt.Errorf("crypto.base_url is required"))
	}
	if c.Crypto.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("crypto.timeout_sec must be positive, got %d", c.Crypto.Timeout))
	}

	if c.Cache.TTLHours <= 0 {
		errs = append(errs, fmt.Errorf("cache.ttl_hours must be positive, got %d", c.Cache.TTLHours))
	}

	return errors.Join(errs...)
}
