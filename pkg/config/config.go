package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for askdb-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (API keys, passwords) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// AI provider configuration
	AI AIConfig `yaml:"ai"`

	// Database configuration (PostgreSQL, optional query execution backend)
	Database DatabaseConfig `yaml:"database"`

	// DomainSignaturesPath optionally points at a YAML file overriding the
	// built-in domain signature table.
	DomainSignaturesPath string `yaml:"domain_signatures_path" env:"DOMAIN_SIGNATURES_PATH" env-default:""`
}

// AIConfig holds model endpoint configuration for both the chat model and
// the embedding model.
type AIConfig struct {
	// Provider selects the chat completion backend: "openai" for any
	// OpenAI-compatible endpoint, "anthropic" for the Anthropic API.
	// Embeddings always go through the OpenAI-compatible endpoint.
	Provider       string `yaml:"provider" env:"AI_PROVIDER" env-default:"openai"`
	LLMBaseURL     string `yaml:"llm_base_url" env:"AI_LLM_BASE_URL" env-default:"https://api.openai.com/v1"`
	LLMModel       string `yaml:"llm_model" env:"AI_LLM_MODEL" env-default:"gpt-4o-mini"`
	EmbeddingModel string `yaml:"embedding_model" env:"AI_EMBEDDING_MODEL" env-default:"text-embedding-3-small"`
	APIKey         string `yaml:"-" env:"AI_API_KEY"` // Secret - not in YAML
	// AnthropicAPIKey is used only when Provider is "anthropic".
	AnthropicAPIKey string `yaml:"-" env:"ANTHROPIC_API_KEY"` // Secret - not in YAML
}

// DatabaseConfig holds PostgreSQL configuration for the optional query
// execution backend. When Enabled is false the engine still classifies
// prompts and generates SQL but never runs it.
type DatabaseConfig struct {
	Enabled        bool   `yaml:"enabled" env:"DATABASE_ENABLED" env-default:"false"`
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"askdb"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"askdb"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"10"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time and set on the
// returned Config. Secrets (AI_API_KEY, ANTHROPIC_API_KEY, PGPASSWORD) must
// come from environment variables (yaml:"-" fields).
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AI.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unsupported AI provider %q (want openai or anthropic)", c.AI.Provider)
	}
	if c.AI.LLMModel == "" {
		return fmt.Errorf("ai.llm_model must be set")
	}
	return nil
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
