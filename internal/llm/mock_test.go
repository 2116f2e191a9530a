package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_Queue(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: newUsage(10, 5)},
		MockText("second"),
	)
	mock.AddResponse(MockResponse{Err: &ErrRateLimit{}})

	first, err := mock.Generate(context.Background(), Request{System: "sys"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(first.Content))
	assert.Equal(t, 15, first.Usage.TotalTokens)
	assert.Equal(t, StopEnd, first.StopReason)
	assert.Equal(t, ProviderMock, first.Model)

	second, err := mock.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "second", second.Text())

	_, err = mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail, "empty queue")

	assert.Equal(t, 4, mock.CallCount())
	assert.Equal(t, "sys", mock.Calls[0].System)
}

func TestMockProvider_Fallback(t *testing.T) {
	mock := NewMockProvider(MockText("queued"))
	fallback := MockText("fallback")
	fallback.StopReason = StopMaxTokens
	mock.Fallback = &fallback

	var got []string
	for range 3 {
		resp, err := mock.Generate(context.Background(), Request{})
		require.NoError(t, err)
		got = append(got, resp.Text()+"/"+resp.StopReason)
	}
	assert.Equal(t, []string{"queued/end", "fallback/max_tokens", "fallback/max_tokens"}, got)
}

func TestMockText(t *testing.T) {
	assert.Equal(t, `"a \"quoted\"\nline"`, string(MockText("a \"quoted\"\nline").Content))
}

func TestMockProvider_FallbackAnswersSchema(t *testing.T) {
	fallback := MockText("plain")
	mock := NewMockProvider()
	mock.Fallback = &fallback

	resp, err := mock.Generate(context.Background(), Request{Schema: tipSchema})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tip":"example","category":"focus"}`, string(resp.Content))

	_, err = validateResponse(tipSchema, resp.Content)
	assert.NoError(t, err)
}

func TestExampleDocument(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"n":     map[string]any{"type": "integer", "minimum": 3},
			"ok":    map[string]any{"type": "boolean"},
			"items": map[string]any{"type": "array", "minItems": 2, "items": map[string]any{"type": "string"}},
			"extra": map[string]any{"type": "string"},
		},
		"required": []any{"n", "ok", "items"},
	}
	doc, err := json.Marshal(exampleDocument(def))
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":3,"ok":false,"items":["example","example"]}`, string(doc))
}
