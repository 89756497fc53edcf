package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sitegen/internal/industry"
	"sitegen/internal/planner"
)

// DefaultTimeout bounds a single generation attempt. There is no retry:
// a timeout is reported as a failure and the caller falls back.
const DefaultTimeout = 10 * time.Second

// OllamaGenerator generates section content against a local model server
// speaking the /api/generate contract.
type OllamaGenerator struct {
	client   *http.Client
	model    string
	endpoint string
	timeout  time.Duration
	prompts  *PromptBuilder
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

func NewOllamaGenerator(model, baseURL string, timeout time.Duration) *OllamaGenerator {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = "http://127.0.0.1:11434"
	}
	url = strings.TrimRight(url, "/")
	if !strings.HasSuffix(url, "/api/generate") {
		url += "/api/generate"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &OllamaGenerator{
		client:   &http.Client{},
		model:    model,
		endpoint: url,
		timeout:  timeout,
		prompts:  &PromptBuilder{},
	}
}

// Generate issues a single bounded generation attempt and extracts the
// JSON payload embedded in the model's free-form response.
func (o *OllamaGenerator) Generate(ctx context.Context, sectionType planner.SectionType, req Request) (Payload, error) {
	if strings.TrimSpace(o.model) == "" {
		return nil, fmt.Errorf("%w: ollama model is required", ErrGeneration)
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	prompt := o.prompts.BuildSectionPrompt(industry.Brief(req.Industry), sectionType, req)
	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: ollama generate returned %d: %s",
			ErrGeneration, resp.StatusCode, strings.TrimSpace(truncate(string(raw), 256)))
	}

	var parsed ollamaGenerateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return ExtractJSON(parsed.Response)
}

// classifyTransportError collapses transport failures into the generation
// error class, keeping the timeout sentinel visible for logs.
func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	return fmt.Errorf("%w: %v", ErrGeneration, err)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
