package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	AI struct {
		Provider       string `yaml:"provider"`
		Model          string `yaml:"model"`
		APIKey         string `yaml:"api_key"`
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Concurrency    int    `yaml:"concurrency"`
	} `yaml:"ai"`
}

// Default returns the configuration used when no config file is present:
// local generation against ollama with a 10 second single-attempt timeout.
func Default() *Config {
	var cfg Config
	cfg.Server.Addr = ":8080"
	cfg.AI.Provider = "ollama"
	cfg.AI.Model = "llama3"
	cfg.AI.TimeoutSeconds = 10
	cfg.AI.Concurrency = 1
	return &cfg
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config if present
	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with environment variables if present
	if apiKey := os.Getenv("SITEGEN_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if provider := os.Getenv("SITEGEN_AI_PROVIDER"); provider != "" {
		cfg.AI.Provider = provider
	}
	if model := os.Getenv("SITEGEN_AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}
	if baseURL := os.Getenv("SITEGEN_AI_BASE_URL"); baseURL != "" {
		cfg.AI.BaseURL = baseURL
	}
	if addr := os.Getenv("SITEGEN_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	return cfg, nil
}

// Timeout converts the configured seconds into a duration, falling back
// to the default single-attempt bound.
func (c *Config) Timeout() time.Duration {
	if c.AI.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.AI.TimeoutSeconds) * time.Second
}
