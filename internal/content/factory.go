package content

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// GeneratorOptions selects and configures an LLM provider.
type GeneratorOptions struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// NewGenerator builds the configured provider. The default is the local
// ollama contract since generation degrades gracefully without any hosted
// backend.
func NewGenerator(ctx context.Context, opts GeneratorOptions) (Generator, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = "ollama"
	}

	switch provider {
	case "ollama":
		return NewOllamaGenerator(opts.Model, opts.BaseURL, opts.Timeout), nil
	case "openai":
		return NewOpenAIGenerator(opts.APIKey, opts.Model, opts.BaseURL, opts.Timeout), nil
	case "gemini":
		return NewGeminiGenerator(ctx, opts.APIKey, opts.Model, opts.Timeout)
	default:
		return nil, fmt.Errorf("unsupported content provider: %s", opts.Provider)
	}
}
