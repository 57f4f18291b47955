// Package config provides configuration management for the researcher scout.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultQuery is the interest statement analyzed when no query is supplied
// on the command line or in a config file.
const DefaultQuery = "I'm interested in Computer Science and Botanic in France, Germany and Italy"

// Config holds all configuration for the researcher scout.
type Config struct {
	// Query contains the interest statement.
	Query QueryConfig `mapstructure:"query"`
	// QA contains question-answering model settings for interest extraction.
	QA QAConfig `mapstructure:"qa"`
	// OpenAlex contains OpenAlex API client settings.
	OpenAlex OpenAlexConfig `mapstructure:"openalex"`
	// Logging contains structured logging settings.
	Logging LoggingConfig `mapstructure:"logging"`
}

// QueryConfig holds the interest statement.
type QueryConfig struct {
	// Text is the interest statement to analyze, e.g. "I'm interested in
	// Computer Science in France".
	Text string `mapstructure:"text" validate:"required"`
}

// QAConfig holds question-answering model configuration.
type QAConfig struct {
	// Provider is the question-answering backend (currently only "huggingface").
	Provider string `mapstructure:"provider" validate:"required"`
	// Model is the extractive QA model that reads topics and locations out of the query.
	Model string `mapstructure:"model" validate:"required"`
	// BaseURL is the inference API base URL.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	// APIToken authenticates requests to the inference API. Anonymous access
	// works but is heavily rate limited. Loaded exclusively from the
	// SCOUT_QA_API_TOKEN environment variable.
	APIToken string `mapstructure:"-"`
	// ScoreThreshold is the minimum answer confidence kept during extraction (default: 0.15).
	ScoreThreshold float64 `mapstructure:"score_threshold" validate:"gt=0,lt=1"`
	// Timeout is the maximum duration for a single inference request.
	Timeout time.Duration `mapstructure:"timeout"`
	// MaxRetries is the number of retries for transient inference failures (default: 3).
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0"`
}

// OpenAlexConfig holds OpenAlex API client configuration.
type OpenAlexConfig struct {
	// BaseURL is the OpenAlex API base URL.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	// Email identifies the client to OpenAlex for polite pool access.
	Email string `mapstructure:"email" validate:"omitempty,email"`
	// Timeout is the maximum duration for a single API request.
	Timeout time.Duration `mapstructure:"timeout"`
	// RateLimit is the sustained request rate in requests per second (default: 10).
	RateLimit float64 `mapstructure:"rate_limit" validate:"gt=0"`
	// BurstSize is the maximum burst of requests above the sustained rate (default: 10).
	BurstSize int `mapstructure:"burst_size" validate:"gt=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the log level (trace, debug, info, warn, error, fatal, panic).
	Level string `mapstructure:"level"`
	// Format is the log format (json, console, or pretty).
	Format string `mapstructure:"format" validate:"oneof=json console pretty"`
	// Output is the log destination (stdout or stderr).
	Output string `mapstructure:"output" validate:"oneof=stdout stderr"`
	// AddSource adds source file and line number to log entries.
	AddSource bool `mapstructure:"add_source"`
	// TimeFormat is the time format for log timestamps.
	TimeFormat string `mapstructure:"time_format"`
}

// Load loads configuration from environment variables and config files.
// A non-empty configFile is read directly and must exist; otherwise the
// default search paths are tried and a missing file is not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("SCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if present
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/researcher-scout")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			// Config file not found is OK, we'll use env vars and defaults
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Load secrets exclusively from environment variables.
	// These fields use mapstructure:"-" to prevent loading from config files.
	loadSecrets(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadSecrets populates secret fields exclusively from environment variables.
// These fields are tagged with mapstructure:"-" to prevent loading from config files.
func loadSecrets(cfg *Config) {
	cfg.QA.APIToken = os.Getenv("SCOUT_QA_API_TOKEN")
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Query defaults
	v.SetDefault("query.text", DefaultQuery)

	// QA defaults
	// API tokens are loaded exclusively from environment variables (see loadSecrets).
	v.SetDefault("qa.provider", "huggingface")
	v.SetDefault("qa.model", "timpal0l/mdeberta-v3-base-squad2")
	v.SetDefault("qa.base_url", "https://api-inference.huggingface.co")
	v.SetDefault("qa.score_threshold", 0.15)
	v.SetDefault("qa.timeout", "60s")
	v.SetDefault("qa.max_retries", 3)

	// OpenAlex defaults
	v.SetDefault("openalex.base_url", "https://api.openalex.org")
	v.SetDefault("openalex.email", "")
	v.SetDefault("openalex.timeout", "30s")
	v.SetDefault("openalex.rate_limit", 10.0)
	v.SetDefault("openalex.burst_size", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.add_source", false)
	v.SetDefault("logging.time_format", time.RFC3339)
}

// validate caches parsed struct tags across Validate calls.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Constraints the struct tags do not express.
	validLogLevels := map[string]bool{
		"trace": true, "debug": true, "info": true,
		"warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch strings.ToLower(c.QA.Provider) {
	case "huggingface":
		// The Hugging Face Inference API accepts anonymous requests, so a
		// missing SCOUT_QA_API_TOKEN is allowed here.
	default:
		return fmt.Errorf("unsupported QA provider: %s", c.QA.Provider)
	}

	if c.QA.Timeout <= 0 {
		return fmt.Errorf("QA timeout must be positive")
	}
	if c.OpenAlex.Timeout <= 0 {
		return fmt.Errorf("OpenAlex timeout must be positive")
	}

	return nil
}
