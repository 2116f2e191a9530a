package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearLLMEnv blanks every variable the config layer reads.
func clearLLMEnv(t *testing.T) {
	t.Helper()
	vars := []string{"ADHDFLOW_LLM_PROVIDER", "ADHDFLOW_LLM_TIMEOUT", "ADHDFLOW_GROQ_BASE_URL", "ADHDFLOW_OPENAI_BASE_URL"}
	for _, p := range []string{"GROQ", "ANTHROPIC", "OPENAI", "GEMINI", "OPENROUTER"} {
		vars = append(vars, "ADHDFLOW_"+p+"_API_KEY", "ADHDFLOW_"+p+"_MODEL", p+"_API_KEY")
	}
	for _, k := range vars {
		t.Setenv(k, "")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"groq with key", Config{Provider: ProviderGroq, Groq: GroqConfig{APIKey: "gsk"}}, ""},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk"}}, ""},
		{"openrouter with key", Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "or"}}, ""},
		{"mock", Config{Provider: ProviderMock}, ""},
		{"groq without key", Config{Provider: ProviderGroq}, "ADHDFLOW_GROQ_API_KEY is required for the groq provider"},
		{"gemini without key", Config{Provider: ProviderGemini}, "ADHDFLOW_GEMINI_API_KEY is required for the gemini provider"},
		{"unknown", Config{Provider: "ollama"}, `unknown LLM provider: "ollama"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)

	cfg := ConfigFromEnv()
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, ProviderGroq, cfg.Provider)
	assert.Equal(t, "llama3-70b-8192", cfg.Groq.Model)

	t.Setenv("ADHDFLOW_GROQ_API_KEY", "gsk-env")
	t.Setenv("ADHDFLOW_GROQ_MODEL", "llama3-8b")
	t.Setenv("ADHDFLOW_LLM_TIMEOUT", "5s")
	t.Setenv("ADHDFLOW_OPENAI_BASE_URL", "http://localhost:8080/v1")
	cfg = ConfigFromEnv()
	assert.Equal(t, GroqConfig{APIKey: "gsk-env", Model: "llama3-8b"}, cfg.Groq)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "http://localhost:8080/v1", cfg.OpenAI.BaseURL)

	t.Setenv("ADHDFLOW_LLM_TIMEOUT", "soon")
	assert.Equal(t, 30*time.Second, ConfigFromEnv().Timeout)
}

func TestResolveConfig(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantProvider string
		wantErr      bool
	}{
		{"explicit groq key", map[string]string{"ADHDFLOW_GROQ_API_KEY": "gsk"}, ProviderGroq, false},
		{"standard key discovered", map[string]string{"OPENAI_API_KEY": "sk"}, ProviderOpenAI, false},
		{"groq wins discovery", map[string]string{"OPENAI_API_KEY": "sk", "GROQ_API_KEY": "gsk"}, ProviderGroq, false},
		{"explicit provider not overridden", map[string]string{"ADHDFLOW_LLM_PROVIDER": "anthropic", "GROQ_API_KEY": "gsk"}, "", true},
		{"nothing configured", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLLMEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := ResolveConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantProvider, cfg.Provider)
			assert.NotEmpty(t, *cfg.apiKey(cfg.Provider))
		})
	}
}

func TestResolveConfig_KeepsTimeoutOnDiscovery(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ADHDFLOW_LLM_TIMEOUT", "2m")
	t.Setenv("GEMINI_API_KEY", "g")

	cfg, err := ResolveConfig()
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
}
