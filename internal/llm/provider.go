package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider sends one request to a hosted model and returns its reply.
type Provider interface {
	// Generate makes exactly one vendor call. With req.Schema set the reply
	// is validated JSON; otherwise it is the completion text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. Advice generation is
	// single-turn, so this usually holds one user message.
	Messages []Message

	// Schema, when set, asks the vendor for JSON output and validates the
	// reply against it. Advice requests leave it nil.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Zero leaves the provider default in place for providers that
	// distinguish "unset".
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "advice-sections".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the validated JSON object for schema requests and the
	// trimmed completion text encoded as a JSON string otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Text returns Content as plain text. Providers return unstructured output
// verbatim; a response that is itself a JSON string is unquoted.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var s string
	if len(r.Content) > 0 && r.Content[0] == '"' && json.Unmarshal(r.Content, &s) == nil {
		return s
	}
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}

// completion is a vendor reply before it is checked against the request.
type completion struct {
	text  string
	model string
	stop  string
	usage Usage
}

// finish checks c against req and builds the Response. Structured replies
// must satisfy req.Schema; plain text is carried as a JSON string.
func finish(req Request, c completion) (*Response, error) {
	text := strings.TrimSpace(c.text)
	if text == "" {
		return nil, &ErrInvalidResponse{Err: errEmptyCompletion}
	}

	resp := &Response{Usage: c.usage, Model: c.model, StopReason: c.stop}
	if resp.StopReason == "" {
		resp.StopReason = StopEnd
	}

	if req.Schema == nil {
		content, err := json.Marshal(text)
		if err != nil {
			return nil, &ErrInvalidResponse{Err: err}
		}
		resp.Content = content
		return resp, nil
	}

	raw := json.RawMessage(text)
	if resp.StopReason == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: raw}
	}
	content, err := validateResponse(req.Schema, raw)
	if err != nil {
		return nil, err
	}
	resp.Content = content
	return resp, nil
}
