package advice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/adhdflow/adhdflow/internal/llm"
)

const samplePlan = `{
  "summary": "Protect the morning for the one task that matters.",
  "steps": [
    {"title": "Pick one task", "detail": "Write it on a sticky note.", "minutes": 5, "when": "morning"},
    {"title": "Work in a sprint", "detail": "Timer on, phone away.", "minutes": 25, "when": "morning"},
    {"title": "Reset your desk", "detail": "Clear everything but tomorrow's note.", "minutes": 10, "when": "evening"}
  ]
}`

func TestClient_ActionPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(samplePlan)})
	pp := &purposeProvider{Provider: mock}
	c := NewClient(pp, DefaultConfig())

	plan, err := c.ActionPlan(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Steps) != 3 || plan.Steps[1].Minutes != 25 {
		t.Errorf("plan = %+v", plan)
	}
	if plan.TotalMinutes() != 40 {
		t.Errorf("TotalMinutes = %d, want 40", plan.TotalMinutes())
	}

	req := mock.Calls[0]
	if req.Schema != PlanSchema {
		t.Error("expected the plan schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "Staying focused on tasks") {
		t.Errorf("prompt should carry the challenges: %q", req.Messages[0].Content)
	}
	if len(pp.purposes) != 1 || pp.purposes[0] != llm.PurposePlan {
		t.Errorf("purposes = %v", pp.purposes)
	}
}

func TestClient_ActionPlanFailures(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"upstream", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}},
		{"not an object", llm.MockText("just do it")},
		{"no steps", llm.MockResponse{Content: json.RawMessage(`{"summary":"x","steps":[]}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(llm.NewMockProvider(tt.resp), DefaultConfig())
			if _, err := c.ActionPlan(context.Background(), testProfile()); !errors.Is(err, ErrGenerationFailed) {
				t.Errorf("err = %v, want ErrGenerationFailed", err)
			}
		})
	}

	if _, err := NewClient(nil, DefaultConfig()).ActionPlan(context.Background(), testProfile()); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("nil provider err = %v, want ErrNotInitialized", err)
	}
}

func TestPlanMarkdown(t *testing.T) {
	var plan Plan
	if err := json.Unmarshal([]byte(samplePlan), &plan); err != nil {
		t.Fatal(err)
	}
	md := plan.Markdown()
	for _, want := range []string{"(40 min)", "1. **Pick one task** _(5 min, morning)_", "3. **Reset your desk**"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestActionPlan_OfflineMock(t *testing.T) {
	fallback := llm.MockText("offline")
	mock := llm.NewMockProvider()
	mock.Fallback = &fallback

	plan, err := NewClient(mock, DefaultConfig()).ActionPlan(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Steps) != 1 || plan.Steps[0].When != "morning" || plan.Steps[0].Minutes != 1 {
		t.Errorf("plan = %+v", plan)
	}
}
