package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sitegen/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ollamaServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestOllamaGenerator_ExtractsEmbeddedJSON(t *testing.T) {
	var gotBody ollamaGenerateRequest
	srv := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(ollamaGenerateResponse{
			Response: `Sure! Here is the JSON: {"title":"Welcome"} Hope that helps!`,
		})
	})

	gen := NewOllamaGenerator("llama3", srv.URL, 0)
	payload, err := gen.Generate(context.Background(), planner.Hero, Request{
		Industry:    "restaurant",
		WebsiteName: "Gourmet Haven",
	})

	require.NoError(t, err)
	assert.Equal(t, "Welcome", payload.Text("title"))
	assert.Equal(t, "llama3", gotBody.Model)
	assert.False(t, gotBody.Stream)
	assert.Contains(t, gotBody.Prompt, "Gourmet Haven")
}

func TestOllamaGenerator_NoBracesIsParseError(t *testing.T) {
	srv := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: "no structured output here"})
	})

	gen := NewOllamaGenerator("llama3", srv.URL, 0)
	_, err := gen.Generate(context.Background(), planner.Hero, Request{})

	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestOllamaGenerator_NonSuccessStatusIsGenerationError(t *testing.T) {
	srv := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	})

	gen := NewOllamaGenerator("llama3", srv.URL, 0)
	_, err := gen.Generate(context.Background(), planner.Hero, Request{})

	assert.ErrorIs(t, err, ErrGeneration)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestOllamaGenerator_TimeoutIsBoundedAndClassified(t *testing.T) {
	release := make(chan struct{})
	srv := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
	})
	t.Cleanup(func() { close(release) })

	gen := NewOllamaGenerator("llama3", srv.URL, 50*time.Millisecond)

	start := time.Now()
	_, err := gen.Generate(context.Background(), planner.Hero, Request{})
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, ErrGeneration)
	assert.Less(t, elapsed, 2*time.Second, "call must fail within the configured bound, not hang")
}

func TestOllamaGenerator_ConnectionRefusedIsGenerationError(t *testing.T) {
	gen := NewOllamaGenerator("llama3", "http://127.0.0.1:1", 200*time.Millisecond)
	_, err := gen.Generate(context.Background(), planner.Hero, Request{})
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestOllamaGenerator_MissingModelIsError(t *testing.T) {
	gen := NewOllamaGenerator("", "http://127.0.0.1:11434", 0)
	_, err := gen.Generate(context.Background(), planner.Hero, Request{})
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestNewOllamaGenerator_NormalizesEndpoint(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:11434/api/generate", NewOllamaGenerator("m", "", 0).endpoint)
	assert.Equal(t, "http://host:11434/api/generate", NewOllamaGenerator("m", "http://host:11434/", 0).endpoint)
	assert.Equal(t, "http://host:11434/api/generate", NewOllamaGenerator("m", "http://host:11434/api/generate", 0).endpoint)
}
