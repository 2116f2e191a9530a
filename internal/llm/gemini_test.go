package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func geminiServer(t *testing.T, status int, reply any) *GeminiProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	require.NoError(t, err)
	return &GeminiProvider{client: client, model: resolveModel(ProviderGemini, "")}
}

func geminiReply(text, finish string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}},
			"finishReason": finish,
		}},
		"usageMetadata": map[string]any{"promptTokenCount": 10, "candidatesTokenCount": 5},
	}
}

func TestGeminiProvider_Generate(t *testing.T) {
	p := geminiServer(t, http.StatusOK, geminiReply("- Try a body double.\n", "STOP"))

	resp, err := p.Generate(context.Background(), tipRequest)
	require.NoError(t, err)
	assert.Equal(t, "- Try a body double.", resp.Text())
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}, resp.Usage)
	assert.Equal(t, "gemini-2.0-flash", resp.Model)
}

func TestGeminiProvider_MaxTokens(t *testing.T) {
	p := geminiServer(t, http.StatusOK, geminiReply("- Try a", "MAX_TOKENS"))

	resp, err := p.Generate(context.Background(), tipRequest)
	require.NoError(t, err)
	assert.Equal(t, StopMaxTokens, resp.StopReason)
}

func TestGeminiProvider_RateLimit(t *testing.T) {
	p := geminiServer(t, http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"code": 429, "message": "quota", "status": "RESOURCE_EXHAUSTED"},
	})

	_, err := p.Generate(context.Background(), tipRequest)
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestNewGeminiProvider(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{})
	assert.EqualError(t, err, "gemini API key is required")

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "g", Model: "gemini-pro"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-pro", p.ModelID())
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(tipSchema.Definition)

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, []string{"tip", "category"}, s.Required)
	require.Len(t, s.Properties, 4)
	assert.Equal(t, genai.TypeInteger, s.Properties["minutes"].Type)
	assert.Equal(t, []string{"focus", "organization", "emotions"}, s.Properties["category"].Enum)

	steps := s.Properties["steps"]
	require.NotNil(t, steps.Items)
	assert.Equal(t, genai.TypeArray, steps.Type)
	assert.Equal(t, genai.TypeString, steps.Items.Properties["text"].Type)
}

func TestGeminiSchema_UnknownTypeIsString(t *testing.T) {
	s := geminiSchema(map[string]any{"type": "null", "description": "nothing"})
	assert.Equal(t, genai.TypeString, s.Type)
	assert.Equal(t, "nothing", s.Description)
}
