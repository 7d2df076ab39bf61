// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Store drivers.
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Env        string `env:"ENV" envDefault:"development"`
	Server     ServerConfig
	Database   DatabaseConfig
	AI         AIConfig
	Generation GenerationConfig
	Identity   IdentityConfig
}

type ServerConfig struct {
	Host               string        `env:"HOST" envDefault:"0.0.0.0"`
	Port               string        `env:"PORT" envDefault:"8080"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"150s"`
	CORSAllowedOrigins string        `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

type DatabaseConfig struct {
	Driver string `env:"STORE_DRIVER" envDefault:"mongo"`
	URI    string `env:"MONGODB_URI"`
	Name   string `env:"MONGODB_DATABASE" envDefault:"marketing_assets"`
}

type AIConfig struct {
	APIKey    string        `env:"OPENAI_API_KEY,required"`
	BaseURL   string        `env:"OPENAI_BASE_URL"`
	Model     string        `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	MaxTokens int           `env:"OPENAI_MAX_TOKENS" envDefault:"4096"`
	Timeout   time.Duration `env:"GENERATION_TIMEOUT" envDefault:"120s"`
}

type GenerationConfig struct {
	RefundOnFailure bool `env:"REFUND_ON_GENERATION_FAILURE" envDefault:"false"`
}

// IdentityConfig names the single demo identity every request acts as.
type IdentityConfig struct {
	DemoEmail string `env:"DEMO_USER_EMAIL" envDefault:"demo@example.com"`
	DemoName  string `env:"DEMO_USER_NAME" envDefault:"Demo User"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Accept the variable names used by earlier deployments.
	if config.Database.URI == "" {
		config.Database.URI = os.Getenv("MONGO_URL")
	}
	if name := os.Getenv("DB_NAME"); name != "" && os.Getenv("MONGODB_DATABASE") == "" {
		config.Database.Name = name
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.AI.APIKey) == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	switch c.Database.Driver {
	case StoreMongo:
		if c.Database.URI == "" {
			return fmt.Errorf("MONGODB_URI is required when STORE_DRIVER is %q", StoreMongo)
		}
		if c.Database.Name == "" {
			return fmt.Errorf("MONGODB_DATABASE must not be empty")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Database.Driver)
	}
	if c.AI.MaxTokens <= 0 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must be positive")
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must be positive")
	}
	if c.Server.RequestTimeout <= c.AI.Timeout {
		return fmt.Errorf("REQUEST_TIMEOUT (%s) must exceed GENERATION_TIMEOUT (%s)", c.Server.RequestTimeout, c.AI.Timeout)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// AllowedOrigins parses the comma-separated CORS origin list.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.Server.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
