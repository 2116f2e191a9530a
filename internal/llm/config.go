package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderGroq       = "groq"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "groq", "openai", "anthropic", "gemini", "openrouter", "mock"
	Provider string

	Groq       GroqConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// Timeout bounds a single LLM request. Callers apply it to the request
	// context. Default: 30s.
	Timeout time.Duration
}

// GroqConfig holds Groq-specific configuration.
type GroqConfig struct {
	APIKey  string
	Model   string // Default: "llama3-70b-8192"
	BaseURL string // Default: "https://api.groq.com/openai/v1"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "meta-llama/llama-3-70b-instruct"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns the default provider and per-provider models.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGroq,
		Groq:       GroqConfig{Model: defaultModels[ProviderGroq]},
		Anthropic:  AnthropicConfig{Model: defaultModels[ProviderAnthropic]},
		OpenAI:     OpenAIConfig{Model: defaultModels[ProviderOpenAI]},
		Gemini:     GeminiConfig{Model: defaultModels[ProviderGemini]},
		OpenRouter: OpenRouterConfig{Model: defaultModels[ProviderOpenRouter]},
		Timeout:    30 * time.Second,
	}
}

// setFromEnv copies the variable key into dst when it is set.
func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv builds a Config from ADHDFLOW_* variables on top of the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setFromEnv(&cfg.Provider, "ADHDFLOW_LLM_PROVIDER")
	if t := os.Getenv("ADHDFLOW_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	setFromEnv(&cfg.Groq.APIKey, "ADHDFLOW_GROQ_API_KEY")
	setFromEnv(&cfg.Groq.Model, "ADHDFLOW_GROQ_MODEL")
	setFromEnv(&cfg.Groq.BaseURL, "ADHDFLOW_GROQ_BASE_URL")

	setFromEnv(&cfg.Anthropic.APIKey, "ADHDFLOW_ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Anthropic.Model, "ADHDFLOW_ANTHROPIC_MODEL")

	setFromEnv(&cfg.OpenAI.APIKey, "ADHDFLOW_OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.Model, "ADHDFLOW_OPENAI_MODEL")
	setFromEnv(&cfg.OpenAI.BaseURL, "ADHDFLOW_OPENAI_BASE_URL")

	setFromEnv(&cfg.Gemini.APIKey, "ADHDFLOW_GEMINI_API_KEY")
	setFromEnv(&cfg.Gemini.Model, "ADHDFLOW_GEMINI_MODEL")

	setFromEnv(&cfg.OpenRouter.APIKey, "ADHDFLOW_OPENROUTER_API_KEY")
	setFromEnv(&cfg.OpenRouter.Model, "ADHDFLOW_OPENROUTER_MODEL")

	return cfg
}

// apiKey returns a pointer to the API key field of provider, or nil for
// providers that need none.
func (c *Config) apiKey(provider string) *string {
	switch provider {
	case ProviderGroq:
		return &c.Groq.APIKey
	case ProviderAnthropic:
		return &c.Anthropic.APIKey
	case ProviderOpenAI:
		return &c.OpenAI.APIKey
	case ProviderGemini:
		return &c.Gemini.APIKey
	case ProviderOpenRouter:
		return &c.OpenRouter.APIKey
	}
	return nil
}

// standardKeys lists the vendor-standard key variables in discovery order.
var standardKeys = []struct{ provider, env string }{
	{ProviderGroq, "GROQ_API_KEY"},
	{ProviderGemini, "GEMINI_API_KEY"},
	{ProviderOpenAI, "OPENAI_API_KEY"},
	{ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

// DiscoverConfig selects the first provider whose vendor-standard key
// variable is set, in standardKeys order.
func DiscoverConfig() (Config, bool) {
	for _, k := range standardKeys {
		v := os.Getenv(k.env)
		if v == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = k.provider
		*cfg.apiKey(k.provider) = v
		return cfg, true
	}
	return Config{}, false
}

// ResolveConfig returns the ADHDFLOW_* configuration when it is complete.
// When no provider was chosen explicitly and the default one has no key,
// it falls back to DiscoverConfig.
func ResolveConfig() (Config, error) {
	cfg := ConfigFromEnv()
	err := cfg.Validate()
	if err == nil {
		return cfg, nil
	}
	if os.Getenv("ADHDFLOW_LLM_PROVIDER") == "" {
		if discovered, ok := DiscoverConfig(); ok {
			discovered.Timeout = cfg.Timeout
			return discovered, nil
		}
	}
	return cfg, err
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	key := c.apiKey(c.Provider)
	if key == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *key == "" {
		env := "ADHDFLOW_" + strings.ToUpper(c.Provider) + "_API_KEY"
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
