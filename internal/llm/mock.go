package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned reply of a MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	// StopReason defaults to StopEnd.
	StopReason string
	Err        error
}

// MockText returns a canned plain-text reply, encoded the way real
// providers encode text completions.
func MockText(text string) MockResponse {
	b, _ := json.Marshal(text)
	return MockResponse{Content: b}
}

// MockProvider replays canned responses in order and records every
// request. It backs the "mock" provider and the tests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request

	// Fallback, when set, answers once the queue is empty.
	Fallback *MockResponse
}

// NewMockProvider queues responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate pops the next response. Once the queue is empty the Fallback
// answers, except that structured requests get the smallest document their
// schema accepts. With neither it fails with ErrProviderUnavailable.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var next MockResponse
	switch {
	case len(m.responses) > 0:
		next, m.responses = m.responses[0], m.responses[1:]
	case m.Fallback != nil && req.Schema != nil:
		doc, err := json.Marshal(exampleDocument(req.Schema.Definition))
		if err != nil {
			return nil, &ErrInvalidResponse{Err: err}
		}
		next = MockResponse{Content: doc}
	case m.Fallback != nil:
		next = *m.Fallback
	default:
		return nil, &ErrProviderUnavailable{}
	}
	if next.Err != nil {
		return nil, next.Err
	}

	stop := next.StopReason
	if stop == "" {
		stop = StopEnd
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: m.ModelID(), StopReason: stop}, nil
}

func (m *MockProvider) ModelID() string {
	return ProviderMock
}

// AddResponse queues one more response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns how many requests were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// exampleDocument builds a minimal instance of a JSON schema definition:
// required properties only, the first enum value, the minimum of numbers
// and minItems array entries.
func exampleDocument(def map[string]any) any {
	if enum, ok := def["enum"].([]any); ok && len(enum) > 0 {
		return enum[0]
	}
	switch def["type"] {
	case "object":
		props, _ := def["properties"].(map[string]any)
		out := map[string]any{}
		for _, name := range stringsOf(def["required"]) {
			sub, _ := props[name].(map[string]any)
			out[name] = exampleDocument(sub)
		}
		return out
	case "array":
		items, _ := def["items"].(map[string]any)
		n, _ := def["minItems"].(int)
		out := make([]any, 0, n)
		for range n {
			out = append(out, exampleDocument(items))
		}
		return out
	case "integer", "number":
		if v, ok := def["minimum"]; ok {
			return v
		}
		return 0
	case "boolean":
		return false
	default:
		return "example"
	}
}
