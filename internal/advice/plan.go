package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adhdflow/adhdflow/internal/llm"
)

// Times of day a plan step can be scheduled for.
var planSlots = []any{"morning", "afternoon", "evening", "anytime"}

// PlanSchema constrains ActionPlan replies.
var PlanSchema = &llm.Schema{
	Name:        "action-plan",
	Description: "A short daily action plan for an ADHD profile",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One sentence on what the plan targets",
			},
			"steps": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": 5,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":   map[string]any{"type": "string", "description": "Imperative, 3-8 words"},
						"detail":  map[string]any{"type": "string", "description": "How to do it, one or two sentences"},
						"minutes": map[string]any{"type": "integer", "minimum": 1, "maximum": 120},
						"when":    map[string]any{"type": "string", "enum": planSlots},
					},
					"required":             []any{"title", "detail", "minutes", "when"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"summary", "steps"},
		"additionalProperties": false,
	},
}

// Plan is a structured set of steps for one day.
type Plan struct {
	Summary string     `json:"summary"`
	Steps   []PlanStep `json:"steps"`
}

type PlanStep struct {
	Title   string `json:"title"`
	Detail  string `json:"detail"`
	Minutes int    `json:"minutes"`
	When    string `json:"when"`
}

// TotalMinutes sums the step durations.
func (p *Plan) TotalMinutes() int {
	n := 0
	for _, s := range p.Steps {
		n += s.Minutes
	}
	return n
}

// Markdown renders the plan as a numbered list.
func (p *Plan) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Today's plan (%d min)\n\n", p.TotalMinutes())
	if p.Summary != "" {
		b.WriteString(p.Summary + "\n\n")
	}
	for i, s := range p.Steps {
		fmt.Fprintf(&b, "%d. **%s** _(%d min, %s)_  \n   %s\n", i+1, s.Title, s.Minutes, s.When, s.Detail)
	}
	return b.String()
}

// ActionPlan asks for a structured plan for p. Like Generate it makes a
// single provider request.
func (c *Client) ActionPlan(ctx context.Context, p Profile) (*Plan, error) {
	if !c.Ready() {
		return nil, ErrNotInitialized
	}
	ctx = llm.WithPurpose(ctx, llm.PurposePlan)

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      adviceSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildPlanUserMessage(p)}},
		Schema:      PlanSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	var plan Plan
	if err := json.Unmarshal(resp.Content, &plan); err != nil {
		return nil, fmt.Errorf("%w: decode plan: %w", ErrGenerationFailed, err)
	}
	if len(plan.Steps) == 0 {
		return nil, fmt.Errorf("%w: plan has no steps", ErrGenerationFailed)
	}
	return &plan, nil
}
