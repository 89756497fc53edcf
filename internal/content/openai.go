package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sitegen/internal/industry"
	"sitegen/internal/planner"
)

// OpenAIGenerator generates section content against an OpenAI-compatible
// chat-completions endpoint.
type OpenAIGenerator struct {
	client   *http.Client
	apiKey   string
	model    string
	endpoint string
	timeout  time.Duration
	prompts  *PromptBuilder
}

type openAIChatRequest struct {
	Model       string              `json:"model"`
	Messages    []openAIChatMessage `json:"messages"`
	Temperature float64             `json:"temperature,omitempty"`
}

type openAIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIChatMessage `json:"message"`
	} `json:"choices"`
}

func NewOpenAIGenerator(apiKey, model, baseURL string, timeout time.Duration) *OpenAIGenerator {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = "https://api.openai.com/v1/chat/completions"
	} else {
		endpoint = strings.TrimRight(endpoint, "/")
		if !strings.HasSuffix(endpoint, "/chat/completions") {
			if strings.HasSuffix(endpoint, "/v1") {
				endpoint += "/chat/completions"
			} else {
				endpoint += "/v1/chat/completions"
			}
		}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenAIGenerator{
		client:   &http.Client{},
		apiKey:   apiKey,
		model:    model,
		endpoint: endpoint,
		timeout:  timeout,
		prompts:  &PromptBuilder{},
	}
}

func (s *OpenAIGenerator) Generate(ctx context.Context, sectionType planner.SectionType, req Request) (Payload, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		return nil, fmt.Errorf("%w: openai api key is required", ErrGeneration)
	}
	if strings.TrimSpace(s.model) == "" {
		return nil, fmt.Errorf("%w: openai model is required", ErrGeneration)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := s.prompts.BuildSectionPrompt(industry.Brief(req.Industry), sectionType, req)
	body, err := json.Marshal(openAIChatRequest{
		Model: s.model,
		Messages: []openAIChatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: openai chat returned %d: %s",
			ErrGeneration, resp.StatusCode, strings.TrimSpace(truncate(string(raw), 256)))
	}

	var parsed openAIChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: response has no choices", ErrParse)
	}
	return ExtractJSON(parsed.Choices[0].Message.Content)
}
