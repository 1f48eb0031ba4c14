package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	AI struct {
		Enabled bool   `yaml:"enabled" env:"AI_ENABLED"`
		BaseURL string `yaml:"base_url" env:"AI_BASE_URL"`
		APIKey  string `yaml:"api_key" env:"AI_API_KEY"`
		Model   string `yaml:"model" env:"AI_MODEL"`
		Timeout string `yaml:"timeout" env:"AI_TIMEOUT"`
	} `yaml:"ai"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A .env file in the working directory is honored first so local
// development does not need exported variables.
func LoadConfig(configPath string) (*Config, error) {
	// Missing .env is fine; exported env vars still apply.
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus env cover the demo setup.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.AI.Enabled = false
	config.AI.BaseURL = "https://generativelanguage.googleapis.com"
	config.AI.Model = "gemini-1.5-flash-latest"
	config.AI.Timeout = "5s"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	mode := strings.ToLower(config.Server.Mode)
	if mode != "development" && mode != "production" && mode != "test" {
		return fmt.Errorf("server mode must be one of development, production, test")
	}

	if _, err := time.ParseDuration(config.AI.Timeout); err != nil {
		return fmt.Errorf("ai timeout is not a valid duration: %w", err)
	}

	if config.AI.Enabled && config.AI.APIKey == "" {
		return fmt.Errorf("ai is enabled but no api key is configured")
	}

	return nil
}

// AITimeout returns the parsed AI request timeout. Validation guarantees
// the string parses, so errors are ignored here.
func (c *Config) AITimeout() time.Duration {
	d, _ := time.ParseDuration(c.AI.Timeout)
	return d
}
