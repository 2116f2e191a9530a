package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/adhdflow/adhdflow/internal/llm"
)

// Client turns quiz profiles into LLM-generated advice. Each call makes
// exactly one provider request.
type Client struct {
	provider llm.Provider
	cfg      Config
}

// NewClient creates an advice client. A nil provider yields a client whose
// calls fail with ErrNotInitialized.
func NewClient(provider llm.Provider, cfg Config) *Client {
	return &Client{provider: provider, cfg: cfg}
}

// Ready reports whether the client has a provider to talk to.
func (c *Client) Ready() bool {
	return c != nil && c.provider != nil
}

// ModelID names the model behind the client, or "" when it has none.
func (c *Client) ModelID() string {
	if !c.Ready() {
		return ""
	}
	return c.provider.ModelID()
}

// Generate requests advice of the given content type for p.
func (c *Client) Generate(ctx context.Context, p Profile, ct ContentType) (string, error) {
	if !c.Ready() {
		return "", ErrNotInitialized
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeTips)

	req := llm.Request{
		System: adviceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAdviceUserMessage(p, ct)},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}
	return c.send(ctx, req)
}

// PersonalizedTips generates the default daily tips for p.
func (c *Client) PersonalizedTips(ctx context.Context, p Profile) (string, error) {
	return c.Generate(ctx, p, DailyTips)
}

// TestConnection sends a fixed small prompt and returns the reply.
func (c *Client) TestConnection(ctx context.Context) (string, error) {
	if !c.Ready() {
		return "", ErrNotInitialized
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeConnectionTest)

	req := llm.Request{
		System: connectionTestSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: connectionTestUserMessage},
		},
		MaxTokens:   c.cfg.ConnectionTestMaxTokens,
		Temperature: c.cfg.Temperature,
	}
	return c.send(ctx, req)
}

func (c *Client) send(ctx context.Context, req llm.Request) (string, error) {
	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response from %s", ErrGenerationFailed, c.provider.ModelID())
	}
	return text, nil
}
