package advice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/adhdflow/adhdflow/internal/llm"
	"github.com/adhdflow/adhdflow/internal/quiz"
)

func testProfile() Profile {
	return Profile{
		ADHDType:          quiz.TypeInattentive,
		FocusScore:        2,
		OrganizationScore: 7,
		PrimaryChallenges: []string{"Staying focused on tasks", "Completing projects", "Time management"},
		MotivationLevel:   DefaultMotivationLevel,
	}
}

// purposeProvider records the purpose tag of each request context.
type purposeProvider struct {
	llm.Provider
	purposes []string
}

func (p *purposeProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	p.purposes = append(p.purposes, llm.PurposeFrom(ctx))
	return p.Provider.Generate(ctx, req)
}

func TestClient_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("  - Use a visible timer.\n- Write one list.  "))
	c := NewClient(mock, DefaultConfig())

	got, err := c.Generate(context.Background(), testProfile(), FocusStrategies)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "- Use a visible timer.\n- Write one list." {
		t.Errorf("got %q", got)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Temperature != 0.7 || req.MaxTokens != 1000 {
		t.Errorf("temperature = %v, max tokens = %d", req.Temperature, req.MaxTokens)
	}
	if req.Schema != nil {
		t.Error("advice requests must be unstructured")
	}
	if req.System != adviceSystemPrompt {
		t.Errorf("system prompt = %q", req.System)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("messages = %+v", req.Messages)
	}
	msg := req.Messages[0].Content
	for _, want := range []string{
		"They have Inattentive type ADHD.",
		"Their focus score is 2/10.",
		"Their organization score is 7/10.",
		"Their primary challenges are: Staying focused on tasks, Completing projects, Time management.",
		FocusStrategies.Instruction(),
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestClient_PersonalizedTipsUsesDailyTips(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("- tip"))
	c := NewClient(mock, DefaultConfig())

	if _, err := c.PersonalizedTips(context.Background(), testProfile()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, DailyTips.Instruction()) {
		t.Error("expected daily tips instruction in prompt")
	}
}

func TestClient_NotInitialized(t *testing.T) {
	c := NewClient(nil, DefaultConfig())
	if c.Ready() {
		t.Fatal("client without provider should not be ready")
	}
	if id := c.ModelID(); id != "" {
		t.Errorf("ModelID = %q, want empty", id)
	}

	if _, err := c.Generate(context.Background(), testProfile(), DailyTips); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Generate err = %v, want ErrNotInitialized", err)
	}
	if _, err := c.TestConnection(context.Background()); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("TestConnection err = %v, want ErrNotInitialized", err)
	}
}

func TestClient_UpstreamError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	c := NewClient(mock, DefaultConfig())

	_, err := c.Generate(context.Background(), testProfile(), Tools)
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("expected wrapped rate limit error, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected exactly one attempt, got %d", mock.CallCount())
	}
}

func TestClient_EmptyResponse(t *testing.T) {
	for _, content := range []string{`""`, `"   "`, ``} {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
		c := NewClient(mock, DefaultConfig())

		if _, err := c.Generate(context.Background(), testProfile(), Routines); !errors.Is(err, ErrGenerationFailed) {
			t.Errorf("content %q: err = %v, want ErrGenerationFailed", content, err)
		}
	}
}

func TestClient_TestConnection(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("1. Sleep\n2. Move\n3. Plan"))
	pp := &purposeProvider{Provider: mock}
	c := NewClient(pp, DefaultConfig())

	got, err := c.TestConnection(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "1. Sleep") {
		t.Errorf("got %q", got)
	}
	req := mock.Calls[0]
	if req.MaxTokens != 200 || req.Messages[0].Content != connectionTestUserMessage {
		t.Errorf("request = %+v", req)
	}

	if _, err := c.Generate(context.Background(), testProfile(), Tools); err == nil {
		t.Fatal("expected error once the mock queue is empty")
	}
	if len(pp.purposes) != 2 || pp.purposes[0] != "connection-test" || pp.purposes[1] != "tips" {
		t.Errorf("purposes = %v", pp.purposes)
	}
}
