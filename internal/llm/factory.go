package llm

import (
	"context"
	"fmt"

	"charm.land/log/v2"

	"github.com/adhdflow/adhdflow/internal/store"
)

// mockAdvice is what the mock provider answers with when it is selected
// outside of tests, so the app can be exercised without an API key.
const mockAdvice = `## Offline preview

- Break big tasks into 10-minute pieces and start the first one now.
- Keep a single written list of commitments where you will see it.
- Pair routine chores with music or a podcast to hold attention.

_This text comes from the mock LLM provider._`

// NewProvider builds the provider cfg selects. With an event repo it is
// wrapped by WithLogging.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *log.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderGroq:
		base, err = NewGroqProvider(cfg.Groq)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		m := NewMockProvider()
		fallback := MockText(mockAdvice)
		m.Fallback = &fallback
		base = m
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if eventRepo == nil {
		return base, nil
	}
	return WithLogging(base, cfg.Provider, eventRepo, logger), nil
}

// NewProviderFromEnv resolves configuration from the environment and
// builds the matching provider. The returned Config is the one in effect.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo, logger *log.Logger) (Provider, Config, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, cfg, err
	}
	p, err := NewProvider(ctx, cfg, eventRepo, logger)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}
