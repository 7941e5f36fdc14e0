package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	Port    int    `envconfig:"APP_PORT" default:"8080"`
	CORS    CORSConfig
	Mistral MistralConfig
	Mongo   MongoConfig
	Upload  UploadConfig
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// Mistral AI configuration. An empty API key disables the LLM path and the
// service runs on heuristics and fallback banks only.
type MistralConfig struct {
	APIKey      string        `envconfig:"MISTRAL_API_KEY"`
	Model       string        `envconfig:"MISTRAL_MODEL" default:"mistral-large-latest"`
	BaseURL     string        `envconfig:"MISTRAL_BASE_URL" default:"https://api.mistral.ai/v1"`
	Timeout     time.Duration `envconfig:"MISTRAL_TIMEOUT" default:"30s"`
	Temperature float32       `envconfig:"MISTRAL_TEMPERATURE" default:"0.3"`
}

// Mongo mirror configuration. An empty URL disables the mirror; in-memory
// state is authoritative either way.
type MongoConfig struct {
	URL    string `envconfig:"MONGO_URL"`
	DBName string `envconfig:"DB_NAME" default:"quantumapp"`
}

// resume upload limits
type UploadConfig struct {
	MaxBytes int64 `envconfig:"UPLOAD_MAX_BYTES" default:"10485760"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.Mistral.Timeout <= 0 {
		return fmt.Errorf("MISTRAL_TIMEOUT must be positive")
	}
	if c.Mistral.Temperature < 0 || c.Mistral.Temperature > 2 {
		return fmt.Errorf("MISTRAL_TEMPERATURE must be between 0 and 2")
	}
	if c.Upload.MaxBytes < 1 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be at least 1")
	}
	if len(c.CORS.TrustedOrigins) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// MistralEnabled reports whether the external LLM path is configured.
func (c *Config) MistralEnabled() bool {
	return c.Mistral.APIKey != ""
}

// MongoEnabled reports whether the document-store mirror is configured.
func (c *Config) MongoEnabled() bool {
	return c.Mongo.URL != ""
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, CORS.Origins=%d, Mistral.Model=%s, "+
		"Mistral.Timeout=%s, Mistral.Enabled=%t, Mongo.DBName=%s, Mongo.Enabled=%t, Upload.MaxBytes=%d}",
		c.Env, c.Port, len(c.CORS.TrustedOrigins), c.Mistral.Model,
		c.Mistral.Timeout, c.MistralEnabled(), c.Mongo.DBName, c.MongoEnabled(), c.Upload.MaxBytes)
}
