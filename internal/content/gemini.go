package content

import (
	"context"
	"fmt"
	"time"

	"sitegen/internal/industry"
	"sitegen/internal/planner"

	"google.golang.org/genai"
)

// GeminiGenerator generates section content through the Gemini API.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	prompts *PromptBuilder
}

func NewGeminiGenerator(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &GeminiGenerator{
		client:  client,
		model:   modelName,
		timeout: timeout,
		prompts: &PromptBuilder{},
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, sectionType planner.SectionType, req Request) (Payload, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := g.prompts.BuildSectionPrompt(industry.Brief(req.Industry), sectionType, req)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty gemini response", ErrParse)
	}
	return ExtractJSON(text)
}
